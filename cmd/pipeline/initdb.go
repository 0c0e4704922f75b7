package main

import (
	"context"
	"freight-optimizer/internal/adapters/repositories"
	"log"

	"github.com/spf13/cobra"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the freight tables and indexes if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInitDB(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}

func runInitDB(ctx context.Context) error {
	conn, err := a.database()
	if err != nil {
		return err
	}

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	log.Println("Schema ready.")
	return nil
}
