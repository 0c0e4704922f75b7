package handlers

import (
	"fmt"
	"freight-optimizer/internal/api/dto"
	"freight-optimizer/internal/platform/obs"
	"freight-optimizer/internal/ports"
	"log"
	"net/http"
	"strconv"
)

const maxOptimizationLimit = 100

// ReportHandler exposes the fuel-efficiency reports computed over stored trips.
type ReportHandler struct {
	Repo         ports.ReportRepository
	TripsPerYear int
}

func (h *ReportHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Printf("%s %s failed: %v", obs.Fields(r.Context()), op, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// RouteOptimization ranks routes by savings potential.
func (h *ReportHandler) RouteOptimization(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	rows, err := h.Repo.RouteOptimization(r.Context(), h.TripsPerYear)
	if err != nil {
		h.internalError(w, r, "route optimization", err)
		return
	}

	res := dto.RouteOptimizationReport{
		TripsPerYear: h.TripsPerYear,
		Routes:       make([]dto.RouteOptimizationResponse, 0, len(rows)),
	}
	for _, o := range rows {
		res.TotalAnnualSavings += o.AnnualSavings
		res.Routes = append(res.Routes, dto.RouteOptimizationResponse{
			RouteID:               o.RouteID,
			LaneName:              o.LaneName,
			BaselineDistanceMiles: o.BaselineDistanceMiles,
			TotalTrips:            o.TotalTrips,
			AvgMPG:                o.AvgMPG,
			BestMPG:               o.BestMPG,
			WorstMPG:              o.WorstMPG,
			AvgCostPerMile:        o.AvgCostPerMile,
			BestCostPerMile:       o.BestCostPerMile,
			BestWeather:           o.BestWeather.String(),
			OptimalDepartureHour:  o.OptimalDepartureHour,
			SavingsPerTrip:        o.SavingsPerTrip,
			AnnualSavings:         o.AnnualSavings,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ReportHandler) WeatherImpact(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	rows, err := h.Repo.WeatherImpact(r.Context())
	if err != nil {
		h.internalError(w, r, "weather impact", err)
		return
	}

	res := dto.WeatherImpactReport{
		Conditions: make([]dto.WeatherImpactResponse, 0, len(rows)),
	}
	for _, wi := range rows {
		res.Conditions = append(res.Conditions, dto.WeatherImpactResponse{
			Weather:        wi.Weather.String(),
			TripCount:      wi.TripCount,
			AvgMPG:         wi.AvgMPG,
			AvgCostPerMile: wi.AvgCostPerMile,
			AvgSpeedMPH:    wi.AvgSpeedMPH,
			AvgDelayHours:  wi.AvgDelayHours,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ReportHandler) HourlyPerformance(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	rows, err := h.Repo.HourlyPerformance(r.Context())
	if err != nil {
		h.internalError(w, r, "hourly performance", err)
		return
	}

	res := dto.HourlyPerformanceReport{
		Hours: make([]dto.HourlyPerformanceResponse, 0, len(rows)),
	}
	for _, hp := range rows {
		res.Hours = append(res.Hours, dto.HourlyPerformanceResponse{
			DepartureHour:  hp.DepartureHour,
			Trips:          hp.Trips,
			AvgMPG:         hp.AvgMPG,
			AvgCostPerMile: hp.AvgCostPerMile,
			AvgDelayHours:  hp.AvgDelayHours,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ReportHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	k, err := h.Repo.KPIs(r.Context())
	if err != nil {
		h.internalError(w, r, "kpis", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.KPIResponse{
		TotalRoutes:    k.TotalRoutes,
		TotalTrips:     k.TotalTrips,
		AvgMPG:         k.AvgMPG,
		AvgCostPerMile: k.AvgCostPerMile,
		TotalFuelCost:  k.TotalFuelCost,
		TotalMiles:     k.TotalMiles,
	})
}

// Optimizations lists stored recommendations, optionally capped by ?limit=N.
func (h *ReportHandler) Optimizations(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxOptimizationLimit {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxOptimizationLimit))
			return
		}
		limit = n
	}

	results, err := h.Repo.ListOptimizationResults(r.Context(), limit)
	if err != nil {
		h.internalError(w, r, "list optimizations", err)
		return
	}

	res := dto.ListOptimizationsResponse{
		Optimizations: make([]dto.OptimizationResponse, 0, len(results)),
	}
	for _, o := range results {
		res.Optimizations = append(res.Optimizations, dto.OptimizationResponse{
			RouteID:              o.RouteID,
			LaneName:             o.LaneName,
			OriginCity:           o.OriginCity,
			DestinationCity:      o.DestinationCity,
			AvgFuelCostPerMile:   o.AvgFuelCostPerMile,
			OptimalDepartureTime: fmt.Sprintf("%02d:00:00", o.OptimalDepartureHour),
			OptimalDepartureDay:  o.OptimalDepartureDay,
			AvgMPG:               o.AvgMPG,
			BestCaseMPG:          o.BestCaseMPG,
			WorstCaseMPG:         o.WorstCaseMPG,
			SavingsPerTrip:       o.SavingsPerTrip,
			AnnualSavings:        o.AnnualSavings,
			Recommendation:       o.Recommendation,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
