package ports

import (
	"context"
	"freight-optimizer/internal/domain"
)

// Contract for retrieving fuel-price reference data from an external source.
type FuelPriceProvider interface {
	// Return per-jurisdiction price observations.
	FetchFuelPrices(ctx context.Context) ([]domain.FuelPrice, error)
}
