package main

import (
	"context"
	"freight-optimizer/internal/adapters/export"
	"freight-optimizer/internal/adapters/repositories"
	"freight-optimizer/internal/services"
	"log"

	"github.com/spf13/cobra"
)

var exportPDF bool

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write report datasets as CSV files for BI tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.Context(), exportPDF)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&exportPDF, "pdf", false, "Also write optimization_summary.pdf")
}

func runExport(ctx context.Context, withSummary bool) error {
	conn, err := a.database()
	if err != nil {
		return err
	}

	paths, err := services.ExportReports(
		ctx,
		repositories.NewPostgresReportRepository(conn),
		export.NewFileExporter(a.cfg.ExportDir),
		withSummary,
	)
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.Printf("Exported path=%s", p)
	}
	return nil
}
