package repositories

import (
	_ "embed"
	"fmt"
	"freight-optimizer/internal/domain"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed seeds/routes.yaml
var defaultRouteCatalog []byte

// RouteSeed is one lane entry of a route catalog file.
type RouteSeed struct {
	OriginCity            string  `yaml:"origin_city" validate:"required"`
	DestinationCity       string  `yaml:"destination_city" validate:"required"`
	OriginState           string  `yaml:"origin_state" validate:"len=2,uppercase"`
	DestinationState      string  `yaml:"destination_state" validate:"len=2,uppercase"`
	BaselineDistanceMiles float64 `yaml:"baseline_distance_miles" validate:"gt=0"`
	OriginLat             float64 `yaml:"origin_lat" validate:"latitude"`
	OriginLon             float64 `yaml:"origin_lon" validate:"longitude"`
	DestinationLat        float64 `yaml:"destination_lat" validate:"latitude"`
	DestinationLon        float64 `yaml:"destination_lon" validate:"longitude"`
}

type routeCatalogFile struct {
	Routes []RouteSeed `yaml:"routes"`
}

// LoadRouteCatalog reads a catalog from path, or the built-in lanes when path is empty.
func LoadRouteCatalog(path string) ([]domain.Route, error) {
	if path == "" {
		return ParseRouteCatalog(defaultRouteCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load route catalog: read %q: %w", path, err)
	}
	return ParseRouteCatalog(data)
}

// ParseRouteCatalog decodes and validates a YAML route catalog.
func ParseRouteCatalog(data []byte) ([]domain.Route, error) {
	var file routeCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse route catalog: %w", err)
	}
	if len(file.Routes) == 0 {
		return nil, fmt.Errorf("parse route catalog: no routes: %w", domain.ErrInvalidInput)
	}

	v := validator.New()
	seen := make(map[string]int, len(file.Routes))

	routes := make([]domain.Route, 0, len(file.Routes))
	for i, s := range file.Routes {
		s.OriginCity = strings.TrimSpace(s.OriginCity)
		s.DestinationCity = strings.TrimSpace(s.DestinationCity)

		if err := v.Struct(s); err != nil {
			return nil, fmt.Errorf("parse route catalog: entry #%d: %v: %w", i+1, err, domain.ErrInvalidInput)
		}

		r := domain.Route{
			OriginCity:            s.OriginCity,
			DestinationCity:       s.DestinationCity,
			OriginState:           s.OriginState,
			DestinationState:      s.DestinationState,
			BaselineDistanceMiles: s.BaselineDistanceMiles,
			Origin:                domain.Coordinates{Lon: s.OriginLon, Lat: s.OriginLat},
			Destination:           domain.Coordinates{Lon: s.DestinationLon, Lat: s.DestinationLat},
		}

		lane := r.LaneName()
		if prev, ok := seen[lane]; ok {
			return nil, fmt.Errorf(
				"parse route catalog: entry #%d: lane %q duplicates entry #%d: %w",
				i+1, lane, prev, domain.ErrInvalidInput,
			)
		}
		seen[lane] = i + 1

		routes = append(routes, r)
	}

	return routes, nil
}
