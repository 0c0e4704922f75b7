package services

import (
	"context"
	"fmt"
	"freight-optimizer/internal/platform/obs"
	"freight-optimizer/internal/ports"
	"log"
)

// ExportReports writes the trip, optimization, and KPI datasets, plus the
// summary document when withSummary is set. It returns the written paths.
func ExportReports(
	ctx context.Context,
	repo ports.ReportRepository,
	exporter ports.ReportExporter,
	withSummary bool,
) (_ []string, err error) {
	defer obs.Time(ctx, "services.ExportReports")(&err)

	trips, err := repo.ListTripExportRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("export reports: list trips: %w", err)
	}

	results, err := repo.ListOptimizationResults(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("export reports: list optimization results: %w", err)
	}

	kpis, err := repo.KPIs(ctx)
	if err != nil {
		return nil, fmt.Errorf("export reports: kpis: %w", err)
	}

	paths := make([]string, 0, 4)

	p, err := exporter.ExportTrips(trips)
	if err != nil {
		return nil, fmt.Errorf("export reports: trips: %w", err)
	}
	log.Printf("%s exported trip records=%d path=%s", obs.Fields(ctx), len(trips), p)
	paths = append(paths, p)

	p, err = exporter.ExportOptimizationResults(results)
	if err != nil {
		return nil, fmt.Errorf("export reports: optimization results: %w", err)
	}
	log.Printf("%s exported optimization records=%d path=%s", obs.Fields(ctx), len(results), p)
	paths = append(paths, p)

	p, err = exporter.ExportKPIs(kpis)
	if err != nil {
		return nil, fmt.Errorf("export reports: kpis: %w", err)
	}
	paths = append(paths, p)

	if withSummary {
		p, err = exporter.ExportSummary(kpis, results)
		if err != nil {
			return nil, fmt.Errorf("export reports: summary: %w", err)
		}
		paths = append(paths, p)
	}

	return paths, nil
}
