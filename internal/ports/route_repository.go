package ports

import (
	"context"
	"freight-optimizer/internal/domain"
)

// Port: a boundary for storing and reading the freight lane catalog.
type RouteRepository interface {
	// Insert catalog routes, skipping lanes that already exist.
	SeedRoutes(ctx context.Context, routes []domain.Route) (int, error)
	// Retrieve all stored routes.
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	// Retrieve the synthesis view of all stored routes.
	ListRouteRefs(ctx context.Context) ([]domain.RouteRef, error)
}
