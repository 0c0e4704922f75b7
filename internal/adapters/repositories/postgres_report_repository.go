package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"freight-optimizer/internal/domain"
	"freight-optimizer/internal/platform/obs"
)

// Postgres-backed implementation of the ReportRepository port.
// Aggregation happens in SQL; numeric results are cast to float8 for scanning.
type PostgresReportRepository struct{ DB *sql.DB }

func NewPostgresReportRepository(db *sql.DB) *PostgresReportRepository {
	return &PostgresReportRepository{DB: db}
}

var errReportDBNil = errors.New("postgres report repository: DB is nil")

const routeOptimizationQuery = `
WITH route_stats AS (
	SELECT
		t.route_id,
		r.lane_name,
		r.baseline_distance_miles,
		COUNT(t.trip_id) AS total_trips,
		ROUND(AVG(t.mpg_achieved)::numeric, 2) AS avg_mpg,
		ROUND(MAX(t.mpg_achieved)::numeric, 2) AS best_mpg,
		ROUND(MIN(t.mpg_achieved)::numeric, 2) AS worst_mpg,
		ROUND(AVG(t.cost_per_mile)::numeric, 4) AS avg_cost_per_mile,
		ROUND(MIN(t.cost_per_mile)::numeric, 4) AS best_cost_per_mile,
		(SELECT t2.weather_conditions
		 FROM trip_logs t2
		 WHERE t2.route_id = t.route_id
		 ORDER BY t2.mpg_achieved DESC, t2.trip_id
		 LIMIT 1) AS best_weather,
		(SELECT EXTRACT(HOUR FROM t2.departure_time)::int
		 FROM trip_logs t2
		 WHERE t2.route_id = t.route_id
		 ORDER BY t2.mpg_achieved DESC, t2.trip_id
		 LIMIT 1) AS optimal_departure_hour,
		ROUND(((AVG(t.cost_per_mile) - MIN(t.cost_per_mile)) * r.baseline_distance_miles)::numeric, 2)
			AS savings_per_trip
	FROM trip_logs t
	JOIN routes r ON t.route_id = r.route_id
	GROUP BY t.route_id, r.lane_name, r.baseline_distance_miles
)
SELECT
	route_id,
	lane_name,
	baseline_distance_miles,
	total_trips,
	avg_mpg::float8,
	best_mpg::float8,
	worst_mpg::float8,
	avg_cost_per_mile::float8,
	best_cost_per_mile::float8,
	best_weather,
	optimal_departure_hour,
	savings_per_trip::float8,
	ROUND(savings_per_trip * $1::int, 2)::float8 AS annual_savings
FROM route_stats
ORDER BY savings_per_trip DESC, route_id;
`

// RouteOptimization ranks routes by the per-trip savings available if every
// trip matched the route's best cost per mile.
func (s *PostgresReportRepository) RouteOptimization(ctx context.Context, tripsPerYear int) (_ []domain.RouteOptimization, err error) {
	defer obs.Time(ctx, "reports.RouteOptimization")(&err)

	if s.DB == nil {
		return nil, errReportDBNil
	}

	rows, err := s.DB.QueryContext(ctx, routeOptimizationQuery, tripsPerYear)
	if err != nil {
		return nil, fmt.Errorf("route optimization: query: %w", err)
	}
	defer rows.Close()

	out := make([]domain.RouteOptimization, 0, 32)
	for rows.Next() {
		var r domain.RouteOptimization
		var weather string
		err := rows.Scan(
			&r.RouteID,
			&r.LaneName,
			&r.BaselineDistanceMiles,
			&r.TotalTrips,
			&r.AvgMPG,
			&r.BestMPG,
			&r.WorstMPG,
			&r.AvgCostPerMile,
			&r.BestCostPerMile,
			&weather,
			&r.OptimalDepartureHour,
			&r.SavingsPerTrip,
			&r.AnnualSavings,
		)
		if err != nil {
			return nil, fmt.Errorf("route optimization: scan row: %w", err)
		}
		r.BestWeather = domain.Weather(weather)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("route optimization: row iteration: %w", err)
	}

	return out, nil
}

// WeatherImpact aggregates trip performance per weather condition, best mpg first.
func (s *PostgresReportRepository) WeatherImpact(ctx context.Context) ([]domain.WeatherImpact, error) {
	if s.DB == nil {
		return nil, errReportDBNil
	}

	query := `
	SELECT
		weather_conditions,
		COUNT(*) AS trip_count,
		ROUND(AVG(mpg_achieved)::numeric, 2)::float8 AS avg_mpg,
		ROUND(AVG(cost_per_mile)::numeric, 4)::float8 AS avg_cost_per_mile,
		ROUND(AVG(avg_speed_mph)::numeric, 1)::float8 AS avg_speed,
		ROUND(AVG(delay_hours)::numeric, 2)::float8 AS avg_delay_hours
	FROM trip_logs
	GROUP BY weather_conditions
	ORDER BY avg_mpg DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("weather impact: query: %w", err)
	}
	defer rows.Close()

	out := make([]domain.WeatherImpact, 0, len(domain.AllWeather))
	for rows.Next() {
		var w domain.WeatherImpact
		var weather string
		if err := rows.Scan(&weather, &w.TripCount, &w.AvgMPG, &w.AvgCostPerMile, &w.AvgSpeedMPH, &w.AvgDelayHours); err != nil {
			return nil, fmt.Errorf("weather impact: scan row: %w", err)
		}
		w.Weather = domain.Weather(weather)
		out = append(out, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("weather impact: row iteration: %w", err)
	}

	return out, nil
}

// HourlyPerformance aggregates trip performance per departure hour.
func (s *PostgresReportRepository) HourlyPerformance(ctx context.Context) ([]domain.HourlyPerformance, error) {
	if s.DB == nil {
		return nil, errReportDBNil
	}

	query := `
	SELECT
		EXTRACT(HOUR FROM departure_time)::int AS departure_hour,
		COUNT(*) AS trips,
		ROUND(AVG(mpg_achieved)::numeric, 2)::float8 AS avg_mpg,
		ROUND(AVG(cost_per_mile)::numeric, 4)::float8 AS avg_cost_per_mile,
		ROUND(AVG(delay_hours)::numeric, 2)::float8 AS avg_delay
	FROM trip_logs
	GROUP BY departure_hour
	ORDER BY departure_hour;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("hourly performance: query: %w", err)
	}
	defer rows.Close()

	out := make([]domain.HourlyPerformance, 0, 24)
	for rows.Next() {
		var h domain.HourlyPerformance
		if err := rows.Scan(&h.DepartureHour, &h.Trips, &h.AvgMPG, &h.AvgCostPerMile, &h.AvgDelayHours); err != nil {
			return nil, fmt.Errorf("hourly performance: scan row: %w", err)
		}
		out = append(out, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("hourly performance: row iteration: %w", err)
	}

	return out, nil
}

// KPIs returns the fleet-wide summary. An empty trip log yields zeros.
func (s *PostgresReportRepository) KPIs(ctx context.Context) (domain.KPIMetrics, error) {
	if s.DB == nil {
		return domain.KPIMetrics{}, errReportDBNil
	}

	query := `
	SELECT
		COUNT(DISTINCT route_id) AS total_routes,
		COUNT(*) AS total_trips,
		COALESCE(ROUND(AVG(mpg_achieved)::numeric, 2), 0)::float8 AS avg_mpg,
		COALESCE(ROUND(AVG(cost_per_mile)::numeric, 4), 0)::float8 AS avg_cost_per_mile,
		COALESCE(ROUND(SUM(fuel_cost_total)::numeric, 2), 0)::float8 AS total_fuel_cost,
		COALESCE(ROUND(SUM(actual_miles_driven)::numeric, 2), 0)::float8 AS total_miles
	FROM trip_logs;
	`
	var k domain.KPIMetrics
	err := s.DB.QueryRowContext(ctx, query).Scan(
		&k.TotalRoutes,
		&k.TotalTrips,
		&k.AvgMPG,
		&k.AvgCostPerMile,
		&k.TotalFuelCost,
		&k.TotalMiles,
	)
	if err != nil {
		return domain.KPIMetrics{}, fmt.Errorf("kpis: query: %w", err)
	}

	return k, nil
}

const refreshOptimizationQuery = `
INSERT INTO optimization_results (
	route_id,
	avg_fuel_cost_per_mile,
	optimal_departure_time,
	optimal_departure_day,
	avg_mpg,
	best_case_mpg,
	worst_case_mpg,
	potential_savings_per_trip,
	annual_savings_estimate,
	recommendation
)
WITH route_analysis AS (
	SELECT
		t.route_id,
		r.baseline_distance_miles,
		AVG(t.cost_per_mile) AS avg_cpm,
		MIN(t.cost_per_mile) AS best_cpm,
		AVG(t.mpg_achieved) AS avg_mpg,
		MAX(t.mpg_achieved) AS best_mpg,
		MIN(t.mpg_achieved) AS worst_mpg,
		(SELECT EXTRACT(HOUR FROM t2.departure_time)::int
		 FROM trip_logs t2
		 WHERE t2.route_id = t.route_id
		 ORDER BY t2.mpg_achieved DESC, t2.cost_per_mile ASC, t2.trip_id
		 LIMIT 1) AS best_hour,
		(SELECT TRIM(TO_CHAR(t2.departure_date, 'Day'))
		 FROM trip_logs t2
		 WHERE t2.route_id = t.route_id
		 ORDER BY t2.mpg_achieved DESC, t2.trip_id
		 LIMIT 1) AS best_day,
		(SELECT t2.weather_conditions
		 FROM trip_logs t2
		 WHERE t2.route_id = t.route_id
		 ORDER BY t2.mpg_achieved DESC, t2.trip_id
		 LIMIT 1) AS best_weather
	FROM trip_logs t
	JOIN routes r ON t.route_id = r.route_id
	GROUP BY t.route_id, r.baseline_distance_miles
)
SELECT
	route_id,
	avg_cpm,
	make_time(best_hour, 0, 0),
	best_day,
	avg_mpg,
	best_mpg,
	worst_mpg,
	(avg_cpm - best_cpm) * baseline_distance_miles,
	(avg_cpm - best_cpm) * baseline_distance_miles * $1::int,
	'Depart at ' || best_hour || ':00 on ' || best_day ||
	' for optimal fuel efficiency. Expect ' || best_weather ||
	' conditions for best MPG.'
FROM route_analysis;
`

// RefreshOptimizationResults replaces the stored recommendations in one
// transaction and returns the number of routes written.
func (s *PostgresReportRepository) RefreshOptimizationResults(ctx context.Context, tripsPerYear int) (_ int, err error) {
	defer obs.Time(ctx, "reports.RefreshOptimizationResults")(&err)

	if s.DB == nil {
		return 0, errReportDBNil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("refresh optimization results: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM optimization_results;`); err != nil {
		return 0, fmt.Errorf("refresh optimization results: clear: %w", err)
	}

	res, err := tx.ExecContext(ctx, refreshOptimizationQuery, tripsPerYear)
	if err != nil {
		return 0, fmt.Errorf("refresh optimization results: insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("refresh optimization results: rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("refresh optimization results: commit tx: %w", err)
	}

	return int(n), nil
}

// ListOptimizationResults returns stored results by annual savings, highest
// first. A limit of zero or less returns every row.
func (s *PostgresReportRepository) ListOptimizationResults(ctx context.Context, limit int) ([]domain.OptimizationResult, error) {
	if s.DB == nil {
		return nil, errReportDBNil
	}

	query := `
	SELECT
		o.route_id,
		r.lane_name,
		r.origin_city,
		r.destination_city,
		o.avg_fuel_cost_per_mile,
		EXTRACT(HOUR FROM o.optimal_departure_time)::int,
		o.optimal_departure_day,
		o.avg_mpg,
		o.best_case_mpg,
		o.worst_case_mpg,
		o.potential_savings_per_trip,
		o.annual_savings_estimate,
		o.recommendation
	FROM optimization_results o
	JOIN routes r ON o.route_id = r.route_id
	ORDER BY o.annual_savings_estimate DESC, o.route_id
	LIMIT $1;
	`
	var lim any
	if limit > 0 {
		lim = limit
	}

	rows, err := s.DB.QueryContext(ctx, query, lim)
	if err != nil {
		return nil, fmt.Errorf("list optimization results: query: %w", err)
	}
	defer rows.Close()

	out := make([]domain.OptimizationResult, 0, 32)
	for rows.Next() {
		var o domain.OptimizationResult
		err := rows.Scan(
			&o.RouteID,
			&o.LaneName,
			&o.OriginCity,
			&o.DestinationCity,
			&o.AvgFuelCostPerMile,
			&o.OptimalDepartureHour,
			&o.OptimalDepartureDay,
			&o.AvgMPG,
			&o.BestCaseMPG,
			&o.WorstCaseMPG,
			&o.SavingsPerTrip,
			&o.AnnualSavings,
			&o.Recommendation,
		)
		if err != nil {
			return nil, fmt.Errorf("list optimization results: scan row: %w", err)
		}
		out = append(out, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list optimization results: row iteration: %w", err)
	}

	return out, nil
}

// ListTripExportRows joins every trip with its route and the origin state's
// price observed on the departure date, if any.
func (s *PostgresReportRepository) ListTripExportRows(ctx context.Context) (_ []domain.TripExportRow, err error) {
	defer obs.Time(ctx, "reports.ListTripExportRows")(&err)

	if s.DB == nil {
		return nil, errReportDBNil
	}

	query := `
	SELECT
		r.lane_name,
		r.origin_city,
		r.destination_city,
		r.baseline_distance_miles,
		t.departure_date,
		EXTRACT(HOUR FROM t.departure_time)::int AS departure_hour,
		TRIM(TO_CHAR(t.departure_date, 'Day')) AS day_of_week,
		t.actual_miles_driven,
		t.fuel_consumed_gallons,
		t.fuel_cost_total,
		COALESCE(t.mpg_achieved, 0),
		COALESCE(t.cost_per_mile, 0),
		t.drive_time_hours,
		t.avg_speed_mph,
		t.weather_conditions,
		t.delay_hours,
		t.load_weight_lbs,
		f.price_per_gallon::float8
	FROM trip_logs t
	JOIN routes r ON t.route_id = r.route_id
	LEFT JOIN fuel_prices f ON f.state_code = r.origin_state
		AND f.date_recorded = t.departure_date
	ORDER BY t.trip_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trip export rows: query: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TripExportRow, 0, 1024)
	for rows.Next() {
		var e domain.TripExportRow
		var weather string
		var price sql.NullFloat64
		err := rows.Scan(
			&e.LaneName,
			&e.OriginCity,
			&e.DestinationCity,
			&e.BaselineDistanceMiles,
			&e.DepartureDate,
			&e.DepartureHour,
			&e.DayOfWeek,
			&e.ActualMiles,
			&e.FuelGallons,
			&e.FuelCost,
			&e.MPG,
			&e.CostPerMile,
			&e.DriveHours,
			&e.AvgSpeedMPH,
			&weather,
			&e.DelayHours,
			&e.LoadWeightLbs,
			&price,
		)
		if err != nil {
			return nil, fmt.Errorf("list trip export rows: scan row: %w", err)
		}
		e.Weather = domain.Weather(weather)
		if price.Valid {
			p := price.Float64
			e.PricePerGallon = &p
		}
		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trip export rows: row iteration: %w", err)
	}

	return out, nil
}
