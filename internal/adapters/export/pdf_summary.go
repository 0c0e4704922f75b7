package export

import (
	"fmt"
	"freight-optimizer/internal/domain"
	"time"

	"github.com/phpdave11/gofpdf"
)

// ExportSummary renders the KPIs and ranked recommendations as a one-document PDF.
func (e *FileExporter) ExportSummary(k domain.KPIMetrics, results []domain.OptimizationResult) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Route Optimization Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ROUTE OPTIMIZATION SUMMARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+time.Now().UTC().Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Fleet KPIs")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Routes        : %d", k.TotalRoutes),
		fmt.Sprintf("Trips         : %d", k.TotalTrips),
		fmt.Sprintf("Average MPG   : %.2f", k.AvgMPG),
		fmt.Sprintf("Cost per mile : $%.4f", k.AvgCostPerMile),
		fmt.Sprintf("Fuel cost     : $%.2f", k.TotalFuelCost),
		fmt.Sprintf("Miles driven  : %.2f", k.TotalMiles),
	}
	for _, s := range lines {
		pdf.Cell(0, 6, s)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	var total float64
	for _, r := range results {
		total += r.AnnualSavings
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Recommendations (potential annual savings $%.2f)", total))
	pdf.Ln(9)

	if len(results) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "No optimization results stored. Run the analysis first.")
		pdf.Ln(6)
	}

	for i, r := range results {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s  ($%.2f/year)", i+1, r.LaneName, r.AnnualSavings))
		pdf.Ln(6)

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, r.Recommendation, "", "", false)
		pdf.Ln(2)
	}

	path, err := e.path(SummaryFile)
	if err != nil {
		return "", fmt.Errorf("export summary: %w", err)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("export summary: write %q: %w", path, err)
	}
	return path, nil
}
