package export

import (
	"encoding/csv"
	"fmt"
	"freight-optimizer/internal/domain"
	"os"
	"path/filepath"
	"strconv"
)

const (
	TripDataFile            = "tableau_trip_data.csv"
	OptimizationResultsFile = "tableau_optimization_results.csv"
	KPIMetricsFile          = "tableau_kpi_metrics.csv"
	SummaryFile             = "optimization_summary.pdf"
)

// FileExporter writes report datasets as files under Dir, creating it on demand.
type FileExporter struct {
	Dir string
}

func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{Dir: dir}
}

func (e *FileExporter) path(name string) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir %q: %w", e.Dir, err)
	}
	return filepath.Join(e.Dir, name), nil
}

// writeCSV writes header and rows to name and returns the file path.
func (e *FileExporter) writeCSV(name string, header []string, rows [][]string) (string, error) {
	path, err := e.path(name)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write %q header: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("write %q rows: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %q: %w", path, err)
	}
	return path, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatHour(h int) string {
	return fmt.Sprintf("%02d:00:00", h)
}

// ExportTrips writes one row per trip, joined with its route and same-day price.
func (e *FileExporter) ExportTrips(rows []domain.TripExportRow) (string, error) {
	header := []string{
		"lane_name", "origin_city", "destination_city", "baseline_distance_miles",
		"departure_date", "departure_hour", "day_of_week", "actual_miles_driven",
		"fuel_consumed_gallons", "fuel_cost_total", "mpg_achieved", "cost_per_mile",
		"drive_time_hours", "avg_speed_mph", "weather_conditions", "delay_hours",
		"load_weight_lbs", "price_per_gallon",
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		price := ""
		if r.PricePerGallon != nil {
			price = formatFloat(*r.PricePerGallon)
		}
		records = append(records, []string{
			r.LaneName,
			r.OriginCity,
			r.DestinationCity,
			formatFloat(r.BaselineDistanceMiles),
			r.DepartureDate.Format("2006-01-02"),
			strconv.Itoa(r.DepartureHour),
			r.DayOfWeek,
			formatFloat(r.ActualMiles),
			formatFloat(r.FuelGallons),
			formatFloat(r.FuelCost),
			formatFloat(r.MPG),
			formatFloat(r.CostPerMile),
			formatFloat(r.DriveHours),
			formatFloat(r.AvgSpeedMPH),
			r.Weather.String(),
			formatFloat(r.DelayHours),
			strconv.Itoa(r.LoadWeightLbs),
			price,
		})
	}

	path, err := e.writeCSV(TripDataFile, header, records)
	if err != nil {
		return "", fmt.Errorf("export trips: %w", err)
	}
	return path, nil
}

// ExportOptimizationResults writes the stored recommendations in the given order.
func (e *FileExporter) ExportOptimizationResults(results []domain.OptimizationResult) (string, error) {
	header := []string{
		"lane_name", "origin_city", "destination_city", "avg_fuel_cost_per_mile",
		"optimal_departure_time", "optimal_departure_day", "avg_mpg", "best_case_mpg",
		"worst_case_mpg", "potential_savings_per_trip", "annual_savings_estimate",
		"recommendation",
	}

	records := make([][]string, 0, len(results))
	for _, r := range results {
		records = append(records, []string{
			r.LaneName,
			r.OriginCity,
			r.DestinationCity,
			formatFloat(r.AvgFuelCostPerMile),
			formatHour(r.OptimalDepartureHour),
			r.OptimalDepartureDay,
			formatFloat(r.AvgMPG),
			formatFloat(r.BestCaseMPG),
			formatFloat(r.WorstCaseMPG),
			formatFloat(r.SavingsPerTrip),
			formatFloat(r.AnnualSavings),
			r.Recommendation,
		})
	}

	path, err := e.writeCSV(OptimizationResultsFile, header, records)
	if err != nil {
		return "", fmt.Errorf("export optimization results: %w", err)
	}
	return path, nil
}

// ExportKPIs writes the single-row KPI summary.
func (e *FileExporter) ExportKPIs(k domain.KPIMetrics) (string, error) {
	header := []string{
		"total_routes", "total_trips", "avg_mpg", "avg_cost_per_mile",
		"total_fuel_cost", "total_miles",
	}
	record := []string{
		strconv.Itoa(k.TotalRoutes),
		strconv.Itoa(k.TotalTrips),
		formatFloat(k.AvgMPG),
		formatFloat(k.AvgCostPerMile),
		formatFloat(k.TotalFuelCost),
		formatFloat(k.TotalMiles),
	}

	path, err := e.writeCSV(KPIMetricsFile, header, [][]string{record})
	if err != nil {
		return "", fmt.Errorf("export kpis: %w", err)
	}
	return path, nil
}
