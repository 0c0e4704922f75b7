package ports

import "freight-optimizer/internal/domain"

// ReportExporter writes report datasets to an external destination
// and returns where each was written.
type ReportExporter interface {
	ExportTrips(rows []domain.TripExportRow) (string, error)
	ExportOptimizationResults(results []domain.OptimizationResult) (string, error)
	ExportKPIs(kpis domain.KPIMetrics) (string, error)
	ExportSummary(kpis domain.KPIMetrics, results []domain.OptimizationResult) (string, error)
}
