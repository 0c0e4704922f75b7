package ports

import (
	"context"
	"freight-optimizer/internal/domain"
)

// Port: persistent fuel-price history keyed by (state, date).
type FuelPriceRepository interface {
	// Insert or overwrite observations; returns the number written.
	UpsertFuelPrices(ctx context.Context, prices []domain.FuelPrice) (int, error)
	// Retrieve every stored observation.
	ListFuelPrices(ctx context.Context) ([]domain.FuelPrice, error)
}
