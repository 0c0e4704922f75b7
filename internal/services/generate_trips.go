package services

import (
	"context"
	"errors"
	"fmt"
	"freight-optimizer/internal/domain"
	"freight-optimizer/internal/platform/obs"
	"freight-optimizer/internal/ports"
	"log"
)

type GenerateTripsRequest struct {
	Count   int
	Workers int
	// Seed makes the run reproducible; nil draws from ProcessRandom.
	Seed *uint64
}

// GenerateTrips loads the reference data, synthesizes the requested trips,
// and hands them to the sink in a single bulk write.
func GenerateTrips(
	ctx context.Context,
	req GenerateTripsRequest,
	routes ports.RouteRepository,
	prices ports.FuelPriceRepository,
	sink ports.TripSink,
) (_ int, err error) {
	defer obs.Time(ctx, "services.GenerateTrips")(&err)

	refs, err := routes.ListRouteRefs(ctx)
	if err != nil {
		return 0, fmt.Errorf("generate trips: list routes: %w", err)
	}

	observations, err := prices.ListFuelPrices(ctx)
	if err != nil {
		return 0, fmt.Errorf("generate trips: list fuel prices: %w", err)
	}
	series := domain.NewFuelPriceSeries(observations)

	newSource := func(int) RandomSource { return ProcessRandom }
	if req.Seed != nil {
		seed := *req.Seed
		newSource = func(worker int) RandomSource { return NewSeededSource(seed + uint64(worker)) }
	}

	trips, err := SynthesizeTripsParallel(newSource, req.Workers, refs, series, req.Count)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientReferenceData) {
			return 0, fmt.Errorf("generate trips: load fuel prices first: %w", err)
		}
		return 0, fmt.Errorf("generate trips: %w", err)
	}

	if len(trips) == 0 {
		return 0, nil
	}

	n, err := sink.InsertTrips(ctx, trips)
	if err != nil {
		return 0, fmt.Errorf("generate trips: insert %d trips: %w", len(trips), err)
	}

	log.Printf("%s generated trips=%d routes=%d price_observations=%d", obs.Fields(ctx), n, len(refs), series.Len())
	return n, nil
}
