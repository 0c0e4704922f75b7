package services

import (
	"context"
	"errors"
	"freight-optimizer/internal/adapters/fuel"
	"freight-optimizer/internal/domain"
	"testing"
	"time"
)

type memRouteRepo struct {
	refs []domain.RouteRef
	err  error
}

func (m *memRouteRepo) SeedRoutes(ctx context.Context, routes []domain.Route) (int, error) {
	for _, r := range routes {
		m.refs = append(m.refs, r.Ref())
	}
	return len(routes), nil
}

func (m *memRouteRepo) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return nil, m.err
}

func (m *memRouteRepo) ListRouteRefs(ctx context.Context) ([]domain.RouteRef, error) {
	return m.refs, m.err
}

type memFuelRepo struct {
	prices []domain.FuelPrice
	err    error
}

func (m *memFuelRepo) UpsertFuelPrices(ctx context.Context, prices []domain.FuelPrice) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.prices = append(m.prices, prices...)
	return len(prices), nil
}

func (m *memFuelRepo) ListFuelPrices(ctx context.Context) ([]domain.FuelPrice, error) {
	return m.prices, m.err
}

type memTripSink struct {
	trips []domain.TripRecord
	calls int
	err   error
}

func (m *memTripSink) InsertTrips(ctx context.Context, trips []domain.TripRecord) (int, error) {
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	m.trips = append(m.trips, trips...)
	return len(trips), nil
}

func testPrices() []domain.FuelPrice {
	d0 := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	return []domain.FuelPrice{
		{StateCode: "TX", Date: d0, PricePerGallon: 3.4, Source: "EIA"},
		{StateCode: "TX", Date: d0.AddDate(0, 0, 7), PricePerGallon: 3.6, Source: "EIA"},
		{StateCode: "CA", Date: d0, PricePerGallon: 4.9, Source: "EIA"},
	}
}

func TestGenerateTripsWritesOneBatch(t *testing.T) {
	routes := &memRouteRepo{refs: []domain.RouteRef{
		{RouteID: 1, BaselineDistanceMiles: 239, OriginState: "TX"},
		{RouteID: 2, BaselineDistanceMiles: 87, OriginState: "CA"},
	}}
	prices := &memFuelRepo{prices: testPrices()}
	sink := &memTripSink{}
	seed := uint64(7)

	n, err := GenerateTrips(context.Background(), GenerateTripsRequest{Count: 300, Workers: 3, Seed: &seed}, routes, prices, sink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 300 || len(sink.trips) != 300 {
		t.Fatalf("expected 300 trips, got n=%d stored=%d", n, len(sink.trips))
	}
	if sink.calls != 1 {
		t.Fatalf("expected a single bulk write, got %d", sink.calls)
	}

	first := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 0, 7)
	for i, trip := range sink.trips {
		if trip.TripDate.Before(first) || trip.TripDate.After(last) {
			t.Fatalf("trip %d date %v outside price range", i, trip.TripDate)
		}
	}
}

func TestGenerateTripsIsReproducibleWithSeed(t *testing.T) {
	routes := &memRouteRepo{refs: []domain.RouteRef{{RouteID: 1, BaselineDistanceMiles: 239, OriginState: "TX"}}}
	seed := uint64(42)

	run := func() []domain.TripRecord {
		sink := &memTripSink{}
		_, err := GenerateTrips(context.Background(), GenerateTripsRequest{Count: 50, Workers: 2, Seed: &seed}, routes, &memFuelRepo{prices: testPrices()}, sink)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return sink.trips
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("trip %d differs between seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateTripsWithoutFuelPrices(t *testing.T) {
	routes := &memRouteRepo{refs: []domain.RouteRef{{RouteID: 1, BaselineDistanceMiles: 239, OriginState: "TX"}}}
	sink := &memTripSink{}

	_, err := GenerateTrips(context.Background(), GenerateTripsRequest{Count: 10}, routes, &memFuelRepo{}, sink)
	if !errors.Is(err, domain.ErrInsufficientReferenceData) {
		t.Fatalf("err = %v, want ErrInsufficientReferenceData", err)
	}
	if sink.calls != 0 {
		t.Fatal("nothing should be written on failure")
	}
}

func TestGenerateTripsPropagatesSinkError(t *testing.T) {
	routes := &memRouteRepo{refs: []domain.RouteRef{{RouteID: 1, BaselineDistanceMiles: 239, OriginState: "TX"}}}
	boom := errors.New("copy failed")

	_, err := GenerateTrips(context.Background(), GenerateTripsRequest{Count: 5}, routes, &memFuelRepo{prices: testPrices()}, &memTripSink{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestGenerateTripsZeroCountSkipsSink(t *testing.T) {
	routes := &memRouteRepo{refs: []domain.RouteRef{{RouteID: 1, BaselineDistanceMiles: 239, OriginState: "TX"}}}
	sink := &memTripSink{}

	n, err := GenerateTrips(context.Background(), GenerateTripsRequest{Count: 0}, routes, &memFuelRepo{prices: testPrices()}, sink)
	if err != nil || n != 0 {
		t.Fatalf("GenerateTrips(0) = %d, %v", n, err)
	}
	if sink.calls != 0 {
		t.Fatal("sink should not be called for zero trips")
	}
}

func TestIngestFuelPrices(t *testing.T) {
	repo := &memFuelRepo{}

	n, err := IngestFuelPrices(context.Background(), fuel.NewStaticFuelPriceProvider(testPrices()), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 || len(repo.prices) != 3 {
		t.Fatalf("expected 3 prices, got n=%d stored=%d", n, len(repo.prices))
	}
}

func TestIngestFuelPricesFetchFailure(t *testing.T) {
	boom := errors.New("EIA unavailable")
	repo := &memFuelRepo{}

	_, err := IngestFuelPrices(context.Background(), fuel.NewFailingFuelPriceProvider(boom), repo)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if len(repo.prices) != 0 {
		t.Fatal("nothing should be stored on fetch failure")
	}
}

type memReportRepo struct {
	routes    []domain.RouteOptimization
	results   []domain.OptimizationResult
	kpis      domain.KPIMetrics
	exports   []domain.TripExportRow
	refreshed int
	limits    []int
	err       error
}

func (m *memReportRepo) RouteOptimization(ctx context.Context, tripsPerYear int) ([]domain.RouteOptimization, error) {
	return m.routes, m.err
}

func (m *memReportRepo) WeatherImpact(ctx context.Context) ([]domain.WeatherImpact, error) {
	return []domain.WeatherImpact{{Weather: domain.WeatherClear, TripCount: 1}}, nil
}

func (m *memReportRepo) HourlyPerformance(ctx context.Context) ([]domain.HourlyPerformance, error) {
	return []domain.HourlyPerformance{{DepartureHour: 3, Trips: 1}}, nil
}

func (m *memReportRepo) KPIs(ctx context.Context) (domain.KPIMetrics, error) {
	return m.kpis, nil
}

func (m *memReportRepo) RefreshOptimizationResults(ctx context.Context, tripsPerYear int) (int, error) {
	m.refreshed++
	return len(m.results), nil
}

func (m *memReportRepo) ListOptimizationResults(ctx context.Context, limit int) ([]domain.OptimizationResult, error) {
	m.limits = append(m.limits, limit)
	if limit > 0 && limit < len(m.results) {
		return m.results[:limit], nil
	}
	return m.results, nil
}

func (m *memReportRepo) ListTripExportRows(ctx context.Context) ([]domain.TripExportRow, error) {
	return m.exports, nil
}

func TestAnalyzeRoutes(t *testing.T) {
	repo := &memReportRepo{
		routes: []domain.RouteOptimization{
			{RouteID: 1, AnnualSavings: 1200.5},
			{RouteID: 2, AnnualSavings: 300.25},
		},
	}
	for i := 0; i < 12; i++ {
		repo.results = append(repo.results, domain.OptimizationResult{RouteID: i + 1})
	}

	report, err := AnalyzeRoutes(context.Background(), repo, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalAnnualSavings != 1500.75 {
		t.Fatalf("total savings = %v", report.TotalAnnualSavings)
	}
	if repo.refreshed != 1 || report.StoredResults != 12 {
		t.Fatalf("refresh not recorded: refreshed=%d stored=%d", repo.refreshed, report.StoredResults)
	}
	if len(report.TopResults) != TopRecommendations {
		t.Fatalf("expected top %d, got %d", TopRecommendations, len(report.TopResults))
	}
	if len(report.Weather) != 1 || len(report.Hourly) != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestAnalyzeRoutesErrors(t *testing.T) {
	if _, err := AnalyzeRoutes(context.Background(), &memReportRepo{}, 0); err == nil {
		t.Fatal("expected an error for tripsPerYear=0")
	}

	boom := errors.New("query failed")
	repo := &memReportRepo{err: boom}
	if _, err := AnalyzeRoutes(context.Background(), repo, 50); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if repo.refreshed != 0 {
		t.Fatal("results should not be refreshed after a failed report")
	}
}

type memExporter struct {
	trips    int
	results  int
	summary  bool
	failKPIs bool
}

func (m *memExporter) ExportTrips(rows []domain.TripExportRow) (string, error) {
	m.trips = len(rows)
	return "trips.csv", nil
}

func (m *memExporter) ExportOptimizationResults(results []domain.OptimizationResult) (string, error) {
	m.results = len(results)
	return "results.csv", nil
}

func (m *memExporter) ExportKPIs(kpis domain.KPIMetrics) (string, error) {
	if m.failKPIs {
		return "", errors.New("disk full")
	}
	return "kpis.csv", nil
}

func (m *memExporter) ExportSummary(kpis domain.KPIMetrics, results []domain.OptimizationResult) (string, error) {
	m.summary = true
	return "summary.pdf", nil
}

func TestExportReports(t *testing.T) {
	repo := &memReportRepo{
		results: make([]domain.OptimizationResult, 15),
		exports: make([]domain.TripExportRow, 4),
	}

	tests := []struct {
		name        string
		withSummary bool
		wantPaths   []string
	}{
		{"csv only", false, []string{"trips.csv", "results.csv", "kpis.csv"}},
		{"with summary", true, []string{"trips.csv", "results.csv", "kpis.csv", "summary.pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := &memExporter{}
			paths, err := ExportReports(context.Background(), repo, exp, tt.withSummary)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(paths) != len(tt.wantPaths) {
				t.Fatalf("paths = %v, want %v", paths, tt.wantPaths)
			}
			for i := range paths {
				if paths[i] != tt.wantPaths[i] {
					t.Fatalf("paths = %v, want %v", paths, tt.wantPaths)
				}
			}
			if exp.trips != 4 || exp.results != 15 {
				t.Fatalf("exported trips=%d results=%d", exp.trips, exp.results)
			}
			if exp.summary != tt.withSummary {
				t.Fatalf("summary written = %v", exp.summary)
			}
		})
	}

	if got := repo.limits[0]; got != 0 {
		t.Fatalf("export should list all results, limit = %d", got)
	}
}

func TestExportReportsStopsOnExporterError(t *testing.T) {
	exp := &memExporter{failKPIs: true}
	if _, err := ExportReports(context.Background(), &memReportRepo{}, exp, true); err == nil {
		t.Fatal("expected an error")
	}
	if exp.summary {
		t.Fatal("summary should not be written after a failed export")
	}
}
