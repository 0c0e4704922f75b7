package main

import (
	"context"
	"fmt"
	"freight-optimizer/internal/adapters/repositories"
	"freight-optimizer/internal/services"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute optimization reports and store per-route recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(ctx context.Context, out io.Writer) error {
	conn, err := a.database()
	if err != nil {
		return err
	}

	report, err := services.AnalyzeRoutes(ctx, repositories.NewPostgresReportRepository(conn), a.cfg.TripsPerYear)
	if err != nil {
		return err
	}

	return printAnalysis(out, report)
}

// routesShown caps the per-route table printed to the terminal.
const routesShown = 10

func printAnalysis(out io.Writer, r *services.AnalysisReport) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "\n=== ROUTE OPTIMIZATION ANALYSIS ===")
	fmt.Fprintln(tw, "\n1. Route-by-route optimization opportunities:")
	fmt.Fprintln(tw, "LANE\tTRIPS\tAVG MPG\tBEST MPG\tAVG $/MI\tBEST $/MI\tBEST WEATHER\tHOUR\tSAVE/TRIP\tSAVE/YEAR")
	for i, o := range r.Routes {
		if i == routesShown {
			break
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.4f\t%.4f\t%s\t%d\t%.2f\t%.2f\n",
			o.LaneName, o.TotalTrips, o.AvgMPG, o.BestMPG, o.AvgCostPerMile, o.BestCostPerMile,
			o.BestWeather, o.OptimalDepartureHour, o.SavingsPerTrip, o.AnnualSavings)
	}
	fmt.Fprintf(tw, "\nTotal potential annual savings: $%.2f\n", r.TotalAnnualSavings)

	fmt.Fprintln(tw, "\n2. Weather impact on performance:")
	fmt.Fprintln(tw, "WEATHER\tTRIPS\tAVG MPG\tAVG $/MI\tAVG SPEED\tAVG DELAY")
	for _, w := range r.Weather {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.4f\t%.1f\t%.2f\n",
			w.Weather, w.TripCount, w.AvgMPG, w.AvgCostPerMile, w.AvgSpeedMPH, w.AvgDelayHours)
	}

	fmt.Fprintln(tw, "\n3. Time of day analysis:")
	fmt.Fprintln(tw, "HOUR\tTRIPS\tAVG MPG\tAVG $/MI\tAVG DELAY")
	for _, h := range r.Hourly {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.4f\t%.2f\n",
			h.DepartureHour, h.Trips, h.AvgMPG, h.AvgCostPerMile, h.AvgDelayHours)
	}

	fmt.Fprintf(tw, "\n4. Stored %d optimization recommendations.\n", r.StoredResults)
	fmt.Fprintf(tw, "\nTop %d routes by savings potential:\n", len(r.TopResults))
	for _, o := range r.TopResults {
		fmt.Fprintf(tw, "%s: Depart at %02d:00:00, Save $%.2f/year\n", o.LaneName, o.OptimalDepartureHour, o.AnnualSavings)
	}

	return tw.Flush()
}
