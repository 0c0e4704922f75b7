package ports

import (
	"context"
	"freight-optimizer/internal/domain"
)

// TripSink accepts synthesized trips in bulk.
type TripSink interface {
	InsertTrips(ctx context.Context, trips []domain.TripRecord) (int, error)
}
