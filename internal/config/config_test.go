package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsAreValid(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("a missing config file should fall back to defaults: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Groups.Watchlist) != 8 || len(cfg.Groups.Indices) != 4 || len(cfg.Groups.Sectors) != 8 {
		t.Errorf("group sizes = %d/%d/%d, want 8/4/8",
			len(cfg.Groups.Watchlist), len(cfg.Groups.Indices), len(cfg.Groups.Sectors))
	}
	if cfg.Charts.Broad != "SPY" || cfg.Charts.Focus != "NVDA" {
		t.Errorf("chart symbols = %s/%s", cfg.Charts.Broad, cfg.Charts.Focus)
	}
	if cfg.Windows.LongDays != 365 || cfg.Windows.ShortDays != 90 {
		t.Errorf("windows = %d/%d", cfg.Windows.LongDays, cfg.Windows.ShortDays)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("output format = %q", cfg.Output.Format)
	}
	if cfg.Palette.Up == "" || cfg.Palette.Down == "" {
		t.Error("palette defaults missing")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
report:
  title: Desk Overview
charts:
  broad: QQQ
windows:
  long_days: 180
  short_days: 60
output:
  format: json
groups:
  watchlist:
    - name: Apple
      symbol: AAPL
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Report.Title != "Desk Overview" {
		t.Errorf("title = %q", cfg.Report.Title)
	}
	if cfg.Charts.Broad != "QQQ" {
		t.Errorf("broad = %q", cfg.Charts.Broad)
	}
	if cfg.Windows.LongDays != 180 || cfg.Windows.ShortDays != 60 {
		t.Errorf("windows = %d/%d", cfg.Windows.LongDays, cfg.Windows.ShortDays)
	}
	if len(cfg.Groups.Watchlist) != 1 {
		t.Errorf("watchlist overridden to 1 entry, got %d", len(cfg.Groups.Watchlist))
	}
	// sections absent from the file keep their defaults
	if len(cfg.Groups.Indices) != 4 {
		t.Errorf("indices = %d, want default 4", len(cfg.Groups.Indices))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty watchlist", func(c *Config) { c.Groups.Watchlist = nil }},
		{"empty indices", func(c *Config) { c.Groups.Indices = nil }},
		{"negative window", func(c *Config) { c.Windows.LongDays = -1 }},
		{"short exceeds long", func(c *Config) { c.Windows.ShortDays = c.Windows.LongDays + 1 }},
		{"bad output format", func(c *Config) { c.Output.Format = "pdf" }},
		{"symbolless instrument", func(c *Config) {
			c.Groups.Sectors = append(c.Groups.Sectors, Instrument{Name: "Ghost"})
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			if err != nil {
				t.Fatal(err)
			}
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MARKETBOARD_BASE_URL", "http://bars.internal:8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHORT_DAYS", "45")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataSource.BaseURL != "http://bars.internal:8080" {
		t.Errorf("base url = %q", cfg.DataSource.BaseURL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Windows.ShortDays != 45 {
		t.Errorf("short days = %d", cfg.Windows.ShortDays)
	}
}
