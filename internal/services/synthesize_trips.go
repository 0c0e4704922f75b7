package services

import (
	"fmt"
	"freight-optimizer/internal/domain"
	"time"

	"golang.org/x/sync/errgroup"
)

// SynthesizeTrips generates n independent trips with DefaultTripModel.
func SynthesizeTrips(
	src RandomSource,
	routes []domain.RouteRef,
	prices *domain.FuelPriceSeries,
	n int,
) ([]domain.TripRecord, error) {
	return DefaultTripModel.Synthesize(src, routes, prices, n)
}

// Synthesize generates n independent trips from the route catalog and the
// fuel-price series. Either all n records are returned or an error is.
func (m TripModel) Synthesize(
	src RandomSource,
	routes []domain.RouteRef,
	prices *domain.FuelPriceSeries,
	n int,
) ([]domain.TripRecord, error) {
	earliest, days, err := m.validate(routes, prices, n)
	if err != nil {
		return nil, err
	}

	trips := make([]domain.TripRecord, n)
	for i := range trips {
		trips[i] = m.synthesizeTrip(src, routes, prices, earliest, days)
	}
	return trips, nil
}

// SynthesizeTripsParallel shards n trips across workers. Each worker draws
// from its own source, so newSource must return a source that is either
// exclusive to the worker or safe for concurrent use.
func SynthesizeTripsParallel(
	newSource func(worker int) RandomSource,
	workers int,
	routes []domain.RouteRef,
	prices *domain.FuelPriceSeries,
	n int,
) ([]domain.TripRecord, error) {
	m := DefaultTripModel

	earliest, days, err := m.validate(routes, prices, n)
	if err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = 1
	}
	if workers > n && n > 0 {
		workers = n
	}

	trips := make([]domain.TripRecord, n)
	if n == 0 {
		return trips, nil
	}

	// Ceiling division so every worker but the last gets the same shard size.
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := min(start+chunk, n)

		src := newSource(w)
		if src == nil {
			return nil, fmt.Errorf("synthesize trips: worker %d has no random source", w)
		}

		g.Go(func() error {
			for i := start; i < end; i++ {
				trips[i] = m.synthesizeTrip(src, routes, prices, earliest, days)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("synthesize trips: %w", err)
	}

	return trips, nil
}

// validate checks the synthesis inputs and returns the first sampleable date
// and the number of additional days in the range.
func (m TripModel) validate(
	routes []domain.RouteRef,
	prices *domain.FuelPriceSeries,
	n int,
) (time.Time, int, error) {
	if n < 0 {
		return time.Time{}, 0, fmt.Errorf("synthesize trips: count %d is negative: %w", n, domain.ErrInvalidInput)
	}
	if len(routes) == 0 {
		return time.Time{}, 0, fmt.Errorf("synthesize trips: route catalog is empty: %w", domain.ErrInvalidInput)
	}
	for _, r := range routes {
		if r.BaselineDistanceMiles <= 0 {
			return time.Time{}, 0, fmt.Errorf(
				"synthesize trips: route %d has non-positive baseline distance %v: %w",
				r.RouteID, r.BaselineDistanceMiles, domain.ErrInvalidInput,
			)
		}
	}
	if m.totalWeatherWeight() <= 0 {
		return time.Time{}, 0, fmt.Errorf("synthesize trips: weather distribution has no weight: %w", domain.ErrInvalidInput)
	}

	earliest, latest, ok := prices.DateRange()
	if !ok {
		return time.Time{}, 0, fmt.Errorf("synthesize trips: fuel price series is empty: %w", domain.ErrInsufficientReferenceData)
	}

	// Both ends are UTC midnights, so the division is exact.
	days := int(latest.Sub(earliest) / (24 * time.Hour))

	return earliest, days, nil
}

// synthesizeTrip draws one record. Draw order: route, date, weather, base
// mpg, speed, load, distance factor, stops, delay, departure hour, minute.
func (m TripModel) synthesizeTrip(
	src RandomSource,
	routes []domain.RouteRef,
	prices *domain.FuelPriceSeries,
	earliest time.Time,
	days int,
) domain.TripRecord {
	route := routes[src.IntN(len(routes))]
	tripDate := earliest.AddDate(0, 0, src.IntN(days+1))
	price := prices.PriceOrDefault(route.OriginState, tripDate)

	weather := m.sampleWeather(src)
	baseMPG := uniform(src, m.BaseMPGMin, m.BaseMPGMax)
	speed := uniform(src, m.SpeedMinMPH, m.SpeedMaxMPH)
	load := intBetween(src, m.LoadMinLbs, m.LoadMaxLbs)
	mpg := m.AdjustedMPG(baseMPG, weather, speed, load)

	miles := route.BaselineDistanceMiles * uniform(src, m.DistanceFactorMin, m.DistanceFactorMax)
	gallons := miles / mpg

	stops := intBetween(src, m.StopsMin, m.StopsMax)
	delay := uniform(src, 0, m.DelayMaxHours)
	departure := domain.NewClockTime(src.IntN(24), src.IntN(60))

	return domain.TripRecord{
		RouteID:            route.RouteID,
		TripDate:           tripDate,
		DepartureTime:      departure,
		ArrivalDate:        tripDate,
		ActualMiles:        miles,
		FuelGallons:        gallons,
		FuelCost:           gallons * price,
		DriveHours:         miles / speed,
		AvgSpeedMPH:        speed,
		Stops:              stops,
		DelayHours:         delay,
		Weather:            weather,
		LoadWeightLbs:      load,
		FuelPricePerGallon: price,
	}
}
