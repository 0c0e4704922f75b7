package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"freight-optimizer/internal/domain"
	"freight-optimizer/internal/platform/obs"
)

// Postgres-backed implementation of the RouteRepository port.
type PostgresRouteRepository struct{ DB *sql.DB }

func NewPostgresRouteRepository(db *sql.DB) *PostgresRouteRepository {
	return &PostgresRouteRepository{DB: db}
}

// SeedRoutes inserts the catalog in one transaction. Lanes already present
// are left untouched. It returns the number of catalog entries processed.
func (s *PostgresRouteRepository) SeedRoutes(ctx context.Context, routes []domain.Route) (_ int, err error) {
	defer obs.Time(ctx, "routes.SeedRoutes")(&err)

	if s.DB == nil {
		return 0, errors.New("postgres route repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed routes: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO routes (
		origin_city,
		destination_city,
		origin_state,
		destination_state,
		baseline_distance_miles,
		origin_lat,
		origin_lon,
		destination_lat,
		destination_lon,
		lane_name
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (lane_name) DO NOTHING;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("seed routes: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range routes {
		if _, err := stmt.ExecContext(ctx,
			r.OriginCity,
			r.DestinationCity,
			r.OriginState,
			r.DestinationState,
			r.BaselineDistanceMiles,
			r.Origin.Lat,
			r.Origin.Lon,
			r.Destination.Lat,
			r.Destination.Lon,
			r.LaneName(),
		); err != nil {
			return 0, fmt.Errorf("seed routes: insert lane %q: %w", r.LaneName(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed routes: commit tx: %w", err)
	}

	return len(routes), nil
}

// ListRoutes returns all stored routes ordered by id.
func (s *PostgresRouteRepository) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	if s.DB == nil {
		return nil, errors.New("postgres route repository: DB is nil")
	}

	query := `
	SELECT
		route_id,
		origin_city,
		destination_city,
		origin_state,
		destination_state,
		baseline_distance_miles,
		origin_lat,
		origin_lon,
		destination_lat,
		destination_lon
	FROM routes
	ORDER BY route_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0, 32)
	for rows.Next() {
		var r domain.Route
		err := rows.Scan(
			&r.RouteID,
			&r.OriginCity,
			&r.DestinationCity,
			&r.OriginState,
			&r.DestinationState,
			&r.BaselineDistanceMiles,
			&r.Origin.Lat,
			&r.Origin.Lon,
			&r.Destination.Lat,
			&r.Destination.Lon,
		)
		if err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		routes = append(routes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

// ListRouteRefs returns the synthesis view of all stored routes.
func (s *PostgresRouteRepository) ListRouteRefs(ctx context.Context) ([]domain.RouteRef, error) {
	if s.DB == nil {
		return nil, errors.New("postgres route repository: DB is nil")
	}

	query := `
	SELECT
		route_id,
		baseline_distance_miles,
		origin_state
	FROM routes
	ORDER BY route_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list route refs: query routes table: %w", err)
	}
	defer rows.Close()

	refs := make([]domain.RouteRef, 0, 32)
	for rows.Next() {
		var r domain.RouteRef
		if err := rows.Scan(&r.RouteID, &r.BaselineDistanceMiles, &r.OriginState); err != nil {
			return nil, fmt.Errorf("list route refs: scan row: %w", err)
		}
		refs = append(refs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list route refs: row iteration: %w", err)
	}

	return refs, nil
}
