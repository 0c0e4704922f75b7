package services

import (
	"context"
	"errors"
	"fmt"
	"freight-optimizer/internal/domain"
	"freight-optimizer/internal/platform/obs"
	"freight-optimizer/internal/ports"
)

// TopRecommendations is how many stored results an analysis run reports back.
const TopRecommendations = 10

// AnalysisReport bundles the outputs of one optimization analysis run.
type AnalysisReport struct {
	Routes             []domain.RouteOptimization
	Weather            []domain.WeatherImpact
	Hourly             []domain.HourlyPerformance
	StoredResults      int
	TopResults         []domain.OptimizationResult
	TotalAnnualSavings float64
}

// AnalyzeRoutes runs the aggregate reports, refreshes the stored
// recommendations, and returns the highest-savings routes.
func AnalyzeRoutes(
	ctx context.Context,
	repo ports.ReportRepository,
	tripsPerYear int,
) (_ *AnalysisReport, err error) {
	defer obs.Time(ctx, "services.AnalyzeRoutes")(&err)

	if tripsPerYear <= 0 {
		return nil, errors.New("analyze routes: tripsPerYear must be positive")
	}

	routes, err := repo.RouteOptimization(ctx, tripsPerYear)
	if err != nil {
		return nil, fmt.Errorf("analyze routes: route optimization: %w", err)
	}

	weather, err := repo.WeatherImpact(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze routes: weather impact: %w", err)
	}

	hourly, err := repo.HourlyPerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze routes: time of day: %w", err)
	}

	stored, err := repo.RefreshOptimizationResults(ctx, tripsPerYear)
	if err != nil {
		return nil, fmt.Errorf("analyze routes: refresh optimization results: %w", err)
	}

	top, err := repo.ListOptimizationResults(ctx, TopRecommendations)
	if err != nil {
		return nil, fmt.Errorf("analyze routes: list optimization results: %w", err)
	}

	total := 0.0
	for _, r := range routes {
		total += r.AnnualSavings
	}

	return &AnalysisReport{
		Routes:             routes,
		Weather:            weather,
		Hourly:             hourly,
		StoredResults:      stored,
		TopResults:         top,
		TotalAnnualSavings: total,
	}, nil
}
