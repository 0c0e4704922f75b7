package ports

import (
	"context"
	"freight-optimizer/internal/domain"
)

// Port: aggregate queries over stored trips, and the optimization_results store.
type ReportRepository interface {
	RouteOptimization(ctx context.Context, tripsPerYear int) ([]domain.RouteOptimization, error)
	WeatherImpact(ctx context.Context) ([]domain.WeatherImpact, error)
	HourlyPerformance(ctx context.Context) ([]domain.HourlyPerformance, error)
	KPIs(ctx context.Context) (domain.KPIMetrics, error)

	// Replace all stored optimization results with a fresh computation.
	RefreshOptimizationResults(ctx context.Context, tripsPerYear int) (int, error)
	// List stored results by annual savings, descending. limit <= 0 means all.
	ListOptimizationResults(ctx context.Context, limit int) ([]domain.OptimizationResult, error)

	ListTripExportRows(ctx context.Context) ([]domain.TripExportRow, error)
}
