package main

import (
	"freight-optimizer/internal/adapters/repositories"
	"freight-optimizer/internal/api"
	"freight-optimizer/internal/config"
	"freight-optimizer/internal/platform/db"
	"freight-optimizer/internal/platform/obs"
	"log"
	"net/http"
	"strconv"
	"time"
)

// main is the application composition root.
// It wires the Postgres repositories behind ports and starts the report API.
func main() {
	obs.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	routes := repositories.NewPostgresRouteRepository(conn)
	reports := repositories.NewPostgresReportRepository(conn)
	router := api.NewRouter(routes, reports, cfg.TripsPerYear)

	port := strconv.Itoa(cfg.Port)

	// Aggregate reports scan the whole trip log, so writes get a generous timeout.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
