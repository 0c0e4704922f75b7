package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"freight-optimizer/internal/domain"
	"freight-optimizer/internal/platform/obs"
)

// Postgres-backed implementation of the FuelPriceRepository port.
type PostgresFuelPriceRepository struct{ DB *sql.DB }

func NewPostgresFuelPriceRepository(db *sql.DB) *PostgresFuelPriceRepository {
	return &PostgresFuelPriceRepository{DB: db}
}

// UpsertFuelPrices writes observations in one transaction. An existing
// (state, date) row takes the new price.
func (s *PostgresFuelPriceRepository) UpsertFuelPrices(ctx context.Context, prices []domain.FuelPrice) (_ int, err error) {
	defer obs.Time(ctx, "fuel.UpsertFuelPrices")(&err)

	if s.DB == nil {
		return 0, errors.New("postgres fuel price repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("upsert fuel prices: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO fuel_prices (
		state_code,
		price_per_gallon,
		date_recorded,
		data_source
	)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (state_code, date_recorded) DO UPDATE
	SET price_per_gallon = EXCLUDED.price_per_gallon;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("upsert fuel prices: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range prices {
		if _, err := stmt.ExecContext(ctx, p.StateCode, p.PricePerGallon, p.Date, p.Source); err != nil {
			return 0, fmt.Errorf(
				"upsert fuel prices: insert %s on %s: %w",
				p.StateCode, p.Date.Format("2006-01-02"), err,
			)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("upsert fuel prices: commit tx: %w", err)
	}

	return len(prices), nil
}

// ListFuelPrices returns every stored observation ordered by state and date.
func (s *PostgresFuelPriceRepository) ListFuelPrices(ctx context.Context) ([]domain.FuelPrice, error) {
	if s.DB == nil {
		return nil, errors.New("postgres fuel price repository: DB is nil")
	}

	query := `
	SELECT
		state_code,
		date_recorded,
		price_per_gallon::float8,
		data_source
	FROM fuel_prices
	ORDER BY state_code, date_recorded;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list fuel prices: query fuel_prices table: %w", err)
	}
	defer rows.Close()

	prices := make([]domain.FuelPrice, 0, 256)
	for rows.Next() {
		var p domain.FuelPrice
		if err := rows.Scan(&p.StateCode, &p.Date, &p.PricePerGallon, &p.Source); err != nil {
			return nil, fmt.Errorf("list fuel prices: scan row: %w", err)
		}
		p.Date = domain.DateOf(p.Date)
		prices = append(prices, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fuel prices: row iteration: %w", err)
	}

	return prices, nil
}
