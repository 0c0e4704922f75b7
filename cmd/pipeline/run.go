package main

import (
	"freight-optimizer/internal/services"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run init-db, seed, fuel, generate, and analyze in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := runInitDB(ctx); err != nil {
			return err
		}
		if err := runSeed(ctx); err != nil {
			return err
		}
		if err := runFuel(ctx); err != nil {
			return err
		}

		req := services.GenerateTripsRequest{Count: a.cfg.TripCount, Workers: a.cfg.GenWorkers}
		if err := runGenerate(ctx, req); err != nil {
			return err
		}

		return runAnalyze(ctx, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
