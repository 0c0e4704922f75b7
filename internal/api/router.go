package api

import (
	"freight-optimizer/internal/api/handlers"
	"freight-optimizer/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(routes ports.RouteRepository, reports ports.ReportRepository, tripsPerYear int) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Repo: routes}
	reportHandler := &handlers.ReportHandler{
		Repo:         reports,
		TripsPerYear: tripsPerYear,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.List)
	mux.HandleFunc("/reports/routes", reportHandler.RouteOptimization)
	mux.HandleFunc("/reports/weather", reportHandler.WeatherImpact)
	mux.HandleFunc("/reports/hourly", reportHandler.HourlyPerformance)
	mux.HandleFunc("/reports/kpis", reportHandler.KPIs)
	mux.HandleFunc("/optimizations", reportHandler.Optimizations)

	return requestIDMiddleware(loggingMiddleware(mux))
}
