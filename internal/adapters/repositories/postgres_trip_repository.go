package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"freight-optimizer/internal/domain"
	platformdb "freight-optimizer/internal/platform/db"
	"freight-optimizer/internal/platform/obs"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var tripColumns = []string{
	"route_id",
	"departure_date",
	"departure_time",
	"arrival_date",
	"actual_miles_driven",
	"fuel_consumed_gallons",
	"fuel_cost_total",
	"drive_time_hours",
	"avg_speed_mph",
	"stops_count",
	"delay_hours",
	"weather_conditions",
	"load_weight_lbs",
}

// Postgres-backed implementation of the TripSink port.
type PostgresTripRepository struct{ DB *sql.DB }

func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{DB: db}
}

// InsertTrips bulk-writes trips with COPY. When the pool is not backed by
// pgx it falls back to a prepared insert inside one transaction.
func (s *PostgresTripRepository) InsertTrips(ctx context.Context, trips []domain.TripRecord) (_ int, err error) {
	defer obs.Time(ctx, "trips.InsertTrips")(&err)

	if s.DB == nil {
		return 0, errors.New("postgres trip repository: DB is nil")
	}
	if len(trips) == 0 {
		return 0, nil
	}

	var copied int64
	err = platformdb.WithPgxConn(ctx, s.DB, func(conn *pgx.Conn) error {
		n, err := conn.CopyFrom(
			ctx,
			pgx.Identifier{"trip_logs"},
			tripColumns,
			pgx.CopyFromSlice(len(trips), func(i int) ([]any, error) {
				return copyRow(trips[i]), nil
			}),
		)
		copied = n
		return err
	})
	switch {
	case err == nil:
		return int(copied), nil
	case errors.Is(err, platformdb.ErrNotPgx):
		log.Printf("%s op=trips.InsertTrips msg=%q", obs.Fields(ctx), "copy unavailable, using batch insert")
		return s.insertBatch(ctx, trips)
	default:
		return 0, fmt.Errorf("insert trips: copy: %w", err)
	}
}

func copyRow(t domain.TripRecord) []any {
	return []any{
		t.RouteID,
		t.TripDate,
		pgtype.Time{Microseconds: t.DepartureTime.SinceMidnight().Microseconds(), Valid: true},
		t.ArrivalDate,
		t.ActualMiles,
		t.FuelGallons,
		t.FuelCost,
		t.DriveHours,
		t.AvgSpeedMPH,
		t.Stops,
		t.DelayHours,
		string(t.Weather),
		t.LoadWeightLbs,
	}
}

func (s *PostgresTripRepository) insertBatch(ctx context.Context, trips []domain.TripRecord) (int, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("insert trips: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO trip_logs (
		route_id,
		departure_date,
		departure_time,
		arrival_date,
		actual_miles_driven,
		fuel_consumed_gallons,
		fuel_cost_total,
		drive_time_hours,
		avg_speed_mph,
		stops_count,
		delay_hours,
		weather_conditions,
		load_weight_lbs
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("insert trips: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range trips {
		if _, err := stmt.ExecContext(ctx,
			t.RouteID,
			t.TripDate,
			t.DepartureTime.String(),
			t.ArrivalDate,
			t.ActualMiles,
			t.FuelGallons,
			t.FuelCost,
			t.DriveHours,
			t.AvgSpeedMPH,
			t.Stops,
			t.DelayHours,
			string(t.Weather),
			t.LoadWeightLbs,
		); err != nil {
			return 0, fmt.Errorf("insert trips: insert trip #%d route_id=%d: %w", i+1, t.RouteID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("insert trips: commit tx: %w", err)
	}

	return len(trips), nil
}
