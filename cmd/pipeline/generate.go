package main

import (
	"context"
	"freight-optimizer/internal/adapters/repositories"
	"freight-optimizer/internal/services"
	"log"

	"github.com/spf13/cobra"
)

type genFlags struct {
	count   int
	workers int
	seed    uint64
}

var gen genFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize trip logs from stored routes and fuel prices",
	Long: `Draws trips uniformly over the stored routes and the fuel-price date range,
applies the driving-condition penalties to fuel efficiency and bulk-writes the
records to trip_logs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := services.GenerateTripsRequest{
			Count:   a.cfg.TripCount,
			Workers: a.cfg.GenWorkers,
		}
		if cmd.Flags().Changed("count") {
			req.Count = gen.count
		}
		if cmd.Flags().Changed("workers") {
			req.Workers = gen.workers
		}
		if cmd.Flags().Changed("seed") {
			seed := gen.seed
			req.Seed = &seed
		}
		return runGenerate(cmd.Context(), req)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&gen.count, "count", "n", 1000, "Number of trips to generate (or TRIP_COUNT env)")
	generateCmd.Flags().IntVar(&gen.workers, "workers", 1, "Parallel synthesis workers (or GEN_WORKERS env)")
	generateCmd.Flags().Uint64Var(&gen.seed, "seed", 0, "Seed for a reproducible run; random when unset")
}

func runGenerate(ctx context.Context, req services.GenerateTripsRequest) error {
	conn, err := a.database()
	if err != nil {
		return err
	}

	n, err := services.GenerateTrips(
		ctx,
		req,
		repositories.NewPostgresRouteRepository(conn),
		repositories.NewPostgresFuelPriceRepository(conn),
		repositories.NewPostgresTripRepository(conn),
	)
	if err != nil {
		return err
	}
	log.Printf("Generated %d trip logs", n)
	return nil
}
