package main

import (
	"context"
	"freight-optimizer/internal/adapters/fuel"
	"freight-optimizer/internal/adapters/repositories"
	"freight-optimizer/internal/services"
	"log"

	"github.com/spf13/cobra"
)

var fuelCmd = &cobra.Command{
	Use:   "fuel",
	Short: "Fetch weekly diesel prices from the EIA API and upsert them",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFuel(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(fuelCmd)
}

func runFuel(ctx context.Context) error {
	if err := a.cfg.RequireEIAKey(); err != nil {
		return err
	}

	provider, err := fuel.NewEIAFuelPriceProvider(fuel.EIAConfig{
		APIKey:      a.cfg.EIAAPIKey,
		BaseURL:     a.cfg.EIABaseURL,
		Product:     a.cfg.EIAProduct,
		RecordLimit: a.cfg.EIARecordLimit,
	})
	if err != nil {
		return err
	}

	conn, err := a.database()
	if err != nil {
		return err
	}

	n, err := services.IngestFuelPrices(ctx, provider, repositories.NewPostgresFuelPriceRepository(conn))
	if err != nil {
		return err
	}
	log.Printf("Fuel prices updated count=%d", n)
	return nil
}
