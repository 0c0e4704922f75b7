package main

import (
	"database/sql"
	"fmt"
	"freight-optimizer/internal/config"
	"freight-optimizer/internal/platform/db"
	"freight-optimizer/internal/platform/obs"
	"log"

	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfg *config.Config
	db  *sql.DB
}

var a app

var rootCmd = &cobra.Command{
	Use:          "pipeline [command]",
	Short:        "Freight fuel-efficiency data pipeline",
	Long:         `Builds a PostgreSQL dataset of freight lanes, EIA diesel prices, and synthetic trip logs, then ranks routes by fuel savings potential.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		obs.Init()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		a.cfg = cfg

		ctx, runID := obs.WithRunID(cmd.Context())
		cmd.SetContext(ctx)
		log.Printf("run_id=%s cmd=%s msg=%q", runID, cmd.Name(), "starting")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if a.db != nil {
			_ = a.db.Close()
			a.db = nil
		}
	},
}

// database opens the connection pool on first use.
func (a *app) database() (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}

	conn, err := db.Open(a.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a.db = conn
	return conn, nil
}
