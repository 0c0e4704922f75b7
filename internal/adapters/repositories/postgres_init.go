package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// schemaStatements are applied in order; each is safe to re-run.
var schemaStatements = []string{
	`
	CREATE TABLE IF NOT EXISTS routes (
		route_id SERIAL PRIMARY KEY,
		origin_city TEXT NOT NULL,
		destination_city TEXT NOT NULL,
		origin_state CHAR(2) NOT NULL,
		destination_state CHAR(2) NOT NULL,
		baseline_distance_miles DOUBLE PRECISION NOT NULL CHECK (baseline_distance_miles > 0),
		origin_lat DOUBLE PRECISION NOT NULL,
		origin_lon DOUBLE PRECISION NOT NULL,
		destination_lat DOUBLE PRECISION NOT NULL,
		destination_lon DOUBLE PRECISION NOT NULL,
		lane_name TEXT NOT NULL UNIQUE
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS fuel_prices (
		price_id SERIAL PRIMARY KEY,
		state_code CHAR(2) NOT NULL,
		price_per_gallon NUMERIC(6,3) NOT NULL,
		date_recorded DATE NOT NULL,
		data_source TEXT NOT NULL,
		UNIQUE (state_code, date_recorded)
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS trip_logs (
		trip_id SERIAL PRIMARY KEY,
		route_id INTEGER NOT NULL REFERENCES routes(route_id),
		departure_date DATE NOT NULL,
		departure_time TIME NOT NULL,
		arrival_date DATE NOT NULL,
		actual_miles_driven DOUBLE PRECISION NOT NULL,
		fuel_consumed_gallons DOUBLE PRECISION NOT NULL,
		fuel_cost_total DOUBLE PRECISION NOT NULL,
		drive_time_hours DOUBLE PRECISION NOT NULL,
		avg_speed_mph DOUBLE PRECISION NOT NULL,
		stops_count INTEGER NOT NULL,
		delay_hours DOUBLE PRECISION NOT NULL,
		weather_conditions TEXT NOT NULL,
		load_weight_lbs INTEGER NOT NULL,
		mpg_achieved DOUBLE PRECISION GENERATED ALWAYS AS
			(actual_miles_driven / NULLIF(fuel_consumed_gallons, 0)) STORED,
		cost_per_mile DOUBLE PRECISION GENERATED ALWAYS AS
			(fuel_cost_total / NULLIF(actual_miles_driven, 0)) STORED
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS optimization_results (
		result_id SERIAL PRIMARY KEY,
		route_id INTEGER NOT NULL REFERENCES routes(route_id),
		avg_fuel_cost_per_mile DOUBLE PRECISION NOT NULL,
		optimal_departure_time TIME NOT NULL,
		optimal_departure_day TEXT NOT NULL,
		avg_mpg DOUBLE PRECISION NOT NULL,
		best_case_mpg DOUBLE PRECISION NOT NULL,
		worst_case_mpg DOUBLE PRECISION NOT NULL,
		potential_savings_per_trip DOUBLE PRECISION NOT NULL,
		annual_savings_estimate DOUBLE PRECISION NOT NULL,
		recommendation TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_trip_logs_route_id
	ON trip_logs(route_id);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_fuel_prices_state_date
	ON fuel_prices(state_code, date_recorded);
	`,
}

// InitSchema creates the freight tables and indexes if they do not exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
