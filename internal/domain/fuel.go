package domain

import (
	"slices"
	"sort"
	"time"
)

// DefaultFuelPricePerGallon is used when a jurisdiction has no observation
// at or before the requested date.
const DefaultFuelPricePerGallon = 3.50

// FuelPrice is a single per-jurisdiction price observation.
type FuelPrice struct {
	StateCode      string
	Date           time.Time
	PricePerGallon float64
	Source         string
}

// DateOf returns t's calendar date as a UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type priceObservation struct {
	date  time.Time
	price float64
}

// FuelPriceSeries indexes fuel prices by jurisdiction, sorted by date,
// for "latest price at or before date" lookups.
// A series is immutable after construction and safe for concurrent reads.
type FuelPriceSeries struct {
	byState  map[string][]priceObservation
	earliest time.Time
	latest   time.Time
	size     int
}

// NewFuelPriceSeries builds a series from raw observations.
// Observations without a date are ignored. When the same jurisdiction and
// date appear more than once, the later entry in prices wins.
func NewFuelPriceSeries(prices []FuelPrice) *FuelPriceSeries {
	s := &FuelPriceSeries{byState: make(map[string][]priceObservation)}

	for _, p := range prices {
		if p.Date.IsZero() {
			continue
		}
		d := DateOf(p.Date)
		s.byState[p.StateCode] = append(s.byState[p.StateCode], priceObservation{date: d, price: p.PricePerGallon})
	}

	for state, obs := range s.byState {
		slices.SortStableFunc(obs, func(a, b priceObservation) int {
			return a.date.Compare(b.date)
		})

		// Collapse duplicate dates, keeping the last one seen.
		out := obs[:0]
		for _, o := range obs {
			if n := len(out); n > 0 && out[n-1].date.Equal(o.date) {
				out[n-1] = o
				continue
			}
			out = append(out, o)
		}
		s.byState[state] = out
		s.size += len(out)

		if s.earliest.IsZero() || out[0].date.Before(s.earliest) {
			s.earliest = out[0].date
		}
		if last := out[len(out)-1].date; last.After(s.latest) {
			s.latest = last
		}
	}

	return s
}

// Len returns the number of distinct (jurisdiction, date) observations.
func (s *FuelPriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// DateRange returns the earliest and latest observation dates across all
// jurisdictions. ok is false for an empty series.
func (s *FuelPriceSeries) DateRange() (earliest, latest time.Time, ok bool) {
	if s.Len() == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.earliest, s.latest, true
}

// PriceAt returns the most recent price for state with date <= date.
func (s *FuelPriceSeries) PriceAt(state string, date time.Time) (float64, bool) {
	if s == nil {
		return 0, false
	}

	obs := s.byState[state]
	d := DateOf(date)

	// First index with obs.date > d; the one before it is the answer.
	i := sort.Search(len(obs), func(i int) bool {
		return obs[i].date.After(d)
	})
	if i == 0 {
		return 0, false
	}
	return obs[i-1].price, true
}

// PriceOrDefault is PriceAt with DefaultFuelPricePerGallon as fallback.
func (s *FuelPriceSeries) PriceOrDefault(state string, date time.Time) float64 {
	if p, ok := s.PriceAt(state, date); ok {
		return p
	}
	return DefaultFuelPricePerGallon
}
