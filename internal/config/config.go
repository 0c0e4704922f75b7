package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting read from the environment (or a .env file).
type Config struct {
	DatabaseURL    string `mapstructure:"DATABASE_URL" validate:"required"`
	EIAAPIKey      string `mapstructure:"EIA_API_KEY"`
	EIABaseURL     string `mapstructure:"EIA_BASE_URL" validate:"required,url"`
	EIAProduct     string `mapstructure:"EIA_PRODUCT" validate:"required"`
	EIARecordLimit int    `mapstructure:"EIA_RECORD_LIMIT" validate:"gt=0"`
	RoutesPath     string `mapstructure:"ROUTES_PATH"`
	TripCount      int    `mapstructure:"TRIP_COUNT" validate:"gte=0"`
	GenWorkers     int    `mapstructure:"GEN_WORKERS" validate:"gte=1"`
	ExportDir      string `mapstructure:"EXPORT_DIR" validate:"required"`
	TripsPerYear   int    `mapstructure:"TRIPS_PER_YEAR" validate:"gt=0"`
	Port           int    `mapstructure:"PORT" validate:"gt=0,lte=65535"`
}

var defaults = map[string]any{
	"DATABASE_URL":     "",
	"EIA_API_KEY":      "",
	"EIA_BASE_URL":     "https://api.eia.gov",
	"EIA_PRODUCT":      "EPD2D",
	"EIA_RECORD_LIMIT": 200,
	"ROUTES_PATH":      "",
	"TRIP_COUNT":       1000,
	"GEN_WORKERS":      1,
	"EXPORT_DIR":       "data",
	"TRIPS_PER_YEAR":   50,
	"PORT":             8080,
}

// Load reads .env if present, overlays the process environment on the
// defaults, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	v := viper.New()
	// Every key needs a default so Unmarshal sees values that only exist in the environment.
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: decode: %w", err)
	}

	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.EIAAPIKey = strings.TrimSpace(cfg.EIAAPIKey)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cfg, nil
}

// RequireEIAKey reports an error when no EIA API key is configured.
func (c *Config) RequireEIAKey() error {
	if c.EIAAPIKey == "" {
		return errors.New("EIA_API_KEY is required to fetch fuel prices")
	}
	return nil
}
