package main

import (
	"bytes"
	"freight-optimizer/internal/domain"
	"freight-optimizer/internal/services"
	"strings"
	"testing"
)

func TestPrintAnalysis(t *testing.T) {
	report := &services.AnalysisReport{
		Routes: []domain.RouteOptimization{
			{LaneName: "Chicago-Atlanta", TotalTrips: 48, AvgMPG: 6.21, BestWeather: domain.WeatherClear, OptimalDepartureHour: 5, AnnualSavings: 2899.5},
		},
		Weather:       []domain.WeatherImpact{{Weather: domain.WeatherSnow, TripCount: 120}},
		Hourly:        []domain.HourlyPerformance{{DepartureHour: 7, Trips: 40}},
		StoredResults: 20,
		TopResults: []domain.OptimizationResult{
			{LaneName: "Chicago-Atlanta", OptimalDepartureHour: 5, AnnualSavings: 2899.5},
		},
		TotalAnnualSavings: 2899.5,
	}

	var buf bytes.Buffer
	if err := printAnalysis(&buf, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Total potential annual savings: $2899.50",
		"Snow",
		"Stored 20 optimization recommendations.",
		"Chicago-Atlanta: Depart at 05:00:00, Save $2899.50/year",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"init-db": false, "seed": false, "fuel": false, "generate": false, "analyze": false, "export": false, "run": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("command %q not registered", name)
		}
	}

	if f := generateCmd.Flags().ShorthandLookup("n"); f == nil || f.Name != "count" {
		t.Fatal("generate should accept -n for the trip count")
	}
}
