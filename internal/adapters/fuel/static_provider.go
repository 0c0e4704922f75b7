package fuel

import (
	"context"
	"freight-optimizer/internal/domain"
)

// StaticFuelPriceProvider serves a fixed set of prices.
type StaticFuelPriceProvider struct {
	prices []domain.FuelPrice
	err    error
}

func NewStaticFuelPriceProvider(prices []domain.FuelPrice) *StaticFuelPriceProvider {
	return &StaticFuelPriceProvider{prices: prices}
}

// NewFailingFuelPriceProvider returns a provider whose fetches always fail with err.
func NewFailingFuelPriceProvider(err error) *StaticFuelPriceProvider {
	return &StaticFuelPriceProvider{err: err}
}

func (p *StaticFuelPriceProvider) FetchFuelPrices(ctx context.Context) ([]domain.FuelPrice, error) {
	if p.err != nil {
		return nil, p.err
	}
	out := make([]domain.FuelPrice, len(p.prices))
	copy(out, p.prices)
	return out, nil
}
