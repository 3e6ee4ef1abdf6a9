package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Expected default addr :8080, got %s", cfg.Addr)
	}
	if cfg.DBPath != "tablero.db" {
		t.Errorf("Expected default db path tablero.db, got %s", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("Expected default CORS origin, got %v", cfg.CORSOrigins)
	}
	if cfg.Release {
		t.Error("Release mode should default to off")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TABLERO_ADDR", ":9999")
	t.Setenv("TABLERO_DB", "/tmp/custom.db")
	t.Setenv("TABLERO_LOG_LEVEL", "debug")
	t.Setenv("TABLERO_CORS_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("TABLERO_RELEASE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Addr != ":9999" {
		t.Errorf("Expected addr :9999, got %s", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("Expected custom db path, got %s", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("Expected 2 CORS origins, got %v", cfg.CORSOrigins)
	}
	if !cfg.Release {
		t.Error("Expected release mode on")
	}
}

func TestFillTheme(t *testing.T) {
	// A partial theme keeps its own values and inherits the rest
	theme := Theme{Accent: "201"}
	fillTheme(&theme)

	if theme.Accent != "201" {
		t.Errorf("Explicit accent should survive, got %s", theme.Accent)
	}
	def := DefaultTheme()
	if theme.ColumnBorder != def.ColumnBorder {
		t.Errorf("Unset field should inherit default, got %s", theme.ColumnBorder)
	}
	if theme.Subtle != def.Subtle {
		t.Errorf("Unset field should inherit default, got %s", theme.Subtle)
	}
}

func TestDefaultClientConfig(t *testing.T) {
	cfg := DefaultClientConfig()
	if cfg.ServerURL != "http://localhost:8080" {
		t.Errorf("Expected default server URL, got %s", cfg.ServerURL)
	}
	if cfg.Theme.Accent == "" {
		t.Error("Default theme should set every color")
	}
}
