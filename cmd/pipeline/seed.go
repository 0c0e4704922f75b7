package main

import (
	"context"
	"fmt"
	"freight-optimizer/internal/adapters/repositories"
	"log"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the freight lane catalog (ROUTES_PATH or the built-in lanes)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context) error {
	routes, err := repositories.LoadRouteCatalog(a.cfg.RoutesPath)
	if err != nil {
		return err
	}

	conn, err := a.database()
	if err != nil {
		return err
	}

	n, err := repositories.NewPostgresRouteRepository(conn).SeedRoutes(ctx, routes)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Printf("Seeded %d routes", n)
	return nil
}
