package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/freight")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DatabaseURL != "postgres://localhost/freight" {
		t.Fatalf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.EIABaseURL != "https://api.eia.gov" || cfg.EIAProduct != "EPD2D" || cfg.EIARecordLimit != 200 {
		t.Fatalf("unexpected EIA defaults %+v", cfg)
	}
	if cfg.TripCount != 1000 || cfg.GenWorkers != 1 || cfg.TripsPerYear != 50 {
		t.Fatalf("unexpected generation defaults %+v", cfg)
	}
	if cfg.ExportDir != "data" || cfg.Port != 8080 || cfg.RoutesPath != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/freight")
	t.Setenv("EIA_API_KEY", " secret ")
	t.Setenv("TRIP_COUNT", "250")
	t.Setenv("GEN_WORKERS", "4")
	t.Setenv("TRIPS_PER_YEAR", "52")
	t.Setenv("EXPORT_DIR", "/tmp/out")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.EIAAPIKey != "secret" {
		t.Fatalf("EIAAPIKey = %q", cfg.EIAAPIKey)
	}
	if cfg.TripCount != 250 || cfg.GenWorkers != 4 || cfg.TripsPerYear != 52 || cfg.Port != 9090 {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if err := cfg.RequireEIAKey(); err != nil {
		t.Fatalf("RequireEIAKey: %v", err)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing database url", map[string]string{"DATABASE_URL": ""}},
		{"zero workers", map[string]string{"DATABASE_URL": "postgres://x", "GEN_WORKERS": "0"}},
		{"negative trip count", map[string]string{"DATABASE_URL": "postgres://x", "TRIP_COUNT": "-1"}},
		{"bad base url", map[string]string{"DATABASE_URL": "postgres://x", "EIA_BASE_URL": "not a url"}},
		{"port out of range", map[string]string{"DATABASE_URL": "postgres://x", "PORT": "70000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestRequireEIAKey(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireEIAKey(); err == nil {
		t.Fatal("expected an error for an empty key")
	}
}
