package export

import (
	"bytes"
	"encoding/csv"
	"freight-optimizer/internal/domain"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %q: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %q: %v", path, err)
	}
	return records
}

func TestExportTripsCreatesDirAndWritesRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	e := NewFileExporter(dir)

	price := 3.5
	rows := []domain.TripExportRow{
		{
			LaneName: "Dallas-Houston", OriginCity: "Dallas", DestinationCity: "Houston",
			BaselineDistanceMiles: 239, DepartureDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			DepartureHour: 14, DayOfWeek: "Monday", ActualMiles: 240, FuelGallons: 37.5,
			FuelCost: 131.25, MPG: 6.4, CostPerMile: 0.546875, DriveHours: 3.8, AvgSpeedMPH: 63,
			Weather: domain.WeatherPartlyCloudy, DelayHours: 0.4, LoadWeightLbs: 31000,
			PricePerGallon: &price,
		},
		{
			LaneName: "Dallas-Houston", OriginCity: "Dallas", DestinationCity: "Houston",
			BaselineDistanceMiles: 239, DepartureDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			DepartureHour: 2, DayOfWeek: "Tuesday", Weather: domain.WeatherFog,
		},
	}

	path, err := e.ExportTrips(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, TripDataFile) {
		t.Fatalf("path = %q", path)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if len(records[0]) != 18 || records[0][0] != "lane_name" || records[0][17] != "price_per_gallon" {
		t.Fatalf("unexpected header %v", records[0])
	}
	if records[1][4] != "2025-03-10" || records[1][14] != "Partly Cloudy" || records[1][17] != "3.5" {
		t.Fatalf("unexpected first row %v", records[1])
	}
	if records[2][17] != "" {
		t.Fatalf("missing price should be empty, got %q", records[2][17])
	}
}

func TestExportOptimizationResultsAndKPIs(t *testing.T) {
	e := NewFileExporter(t.TempDir())

	results := []domain.OptimizationResult{
		{
			LaneName: "Chicago-Atlanta", OriginCity: "Chicago", DestinationCity: "Atlanta",
			AvgFuelCostPerMile: 0.56, OptimalDepartureHour: 5, OptimalDepartureDay: "Tuesday",
			AvgMPG: 6.2, BestCaseMPG: 7.1, WorstCaseMPG: 5, SavingsPerTrip: 58, AnnualSavings: 2900,
			Recommendation: "Depart at 5:00 on Tuesday for optimal fuel efficiency. Expect Clear conditions for best MPG.",
		},
	}

	path, err := e.ExportOptimizationResults(results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records := readCSV(t, path)
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	if records[1][4] != "05:00:00" || records[1][10] != "2900" {
		t.Fatalf("unexpected row %v", records[1])
	}

	path, err = e.ExportKPIs(domain.KPIMetrics{
		TotalRoutes: 20, TotalTrips: 1000, AvgMPG: 6.35, AvgCostPerMile: 0.5521,
		TotalFuelCost: 129811.42, TotalMiles: 235112.9,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records = readCSV(t, path)
	want := []string{"20", "1000", "6.35", "0.5521", "129811.42", "235112.9"}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	for i, v := range want {
		if records[1][i] != v {
			t.Fatalf("kpi column %d = %q, want %q", i, records[1][i], v)
		}
	}
}

func TestExportSummaryWritesPDF(t *testing.T) {
	e := NewFileExporter(t.TempDir())

	results := []domain.OptimizationResult{
		{LaneName: "Chicago-Atlanta", AnnualSavings: 2900, Recommendation: "Depart at 5:00 on Tuesday."},
		{LaneName: "Dallas-Houston", AnnualSavings: 800, Recommendation: "Depart at 3:00 on Friday."},
	}

	path, err := e.ExportSummary(domain.KPIMetrics{TotalRoutes: 2, TotalTrips: 10}, results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestExportFailsWhenDirIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := NewFileExporter(file).ExportKPIs(domain.KPIMetrics{}); err == nil {
		t.Fatal("expected an error when the export dir is a regular file")
	}
}
