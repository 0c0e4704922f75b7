package services

import (
	"context"
	"fmt"
	"freight-optimizer/internal/platform/obs"
	"freight-optimizer/internal/ports"
)

// IngestFuelPrices pulls fuel prices from the provider and upserts them.
func IngestFuelPrices(
	ctx context.Context,
	provider ports.FuelPriceProvider,
	repo ports.FuelPriceRepository,
) (_ int, err error) {
	defer obs.Time(ctx, "services.IngestFuelPrices")(&err)

	prices, err := provider.FetchFuelPrices(ctx)
	if err != nil {
		return 0, fmt.Errorf("ingest fuel prices: fetch: %w", err)
	}
	if len(prices) == 0 {
		return 0, nil
	}

	n, err := repo.UpsertFuelPrices(ctx, prices)
	if err != nil {
		return 0, fmt.Errorf("ingest fuel prices: upsert %d prices: %w", len(prices), err)
	}
	return n, nil
}
