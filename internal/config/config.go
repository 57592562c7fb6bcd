package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Instrument is one catalog entry: a display name and a ticker symbol.
type Instrument struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

// Palette maps color roles to concrete colors. It travels with the JSON
// report document, so it carries json tags as well.
type Palette struct {
	Up      string `yaml:"up" json:"up"`
	Down    string `yaml:"down" json:"down"`
	Primary string `yaml:"primary" json:"primary"`
	Accent  string `yaml:"accent" json:"accent"`
	Muted   string `yaml:"muted" json:"muted"`
}

// Config holds all application configuration.
type Config struct {
	Report struct {
		Title string `yaml:"title"`
	} `yaml:"report"`
	Groups struct {
		Watchlist []Instrument `yaml:"watchlist"`
		Indices   []Instrument `yaml:"indices"`
		Sectors   []Instrument `yaml:"sectors"`
	} `yaml:"groups"`
	Charts struct {
		Broad string   `yaml:"broad"`
		Minis []string `yaml:"minis"`
		Focus string   `yaml:"focus"`
	} `yaml:"charts"`
	Windows struct {
		LongDays  int `yaml:"long_days"`
		ShortDays int `yaml:"short_days"`
	} `yaml:"windows"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Output struct {
		Format string `yaml:"format"` // "text" or "json"
		Path   string `yaml:"path"`   // empty means stdout
	} `yaml:"output"`
	Metrics struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // "console" or "json"
	} `yaml:"log"`
	Palette Palette `yaml:"palette"`
	Proxy   string  `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("MARKETBOARD_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("MARKETBOARD_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.ListenAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LONG_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Windows.LongDays = n
		}
	}
	if v := os.Getenv("SHORT_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Windows.ShortDays = n
		}
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Report.Title == "" {
		cfg.Report.Title = "STOCK MARKET DASHBOARD"
	}
	if len(cfg.Groups.Watchlist) == 0 {
		cfg.Groups.Watchlist = []Instrument{
			{Name: "Apple", Symbol: "AAPL"},
			{Name: "Microsoft", Symbol: "MSFT"},
			{Name: "NVIDIA", Symbol: "NVDA"},
			{Name: "Amazon", Symbol: "AMZN"},
			{Name: "Google", Symbol: "GOOGL"},
			{Name: "Tesla", Symbol: "TSLA"},
			{Name: "Meta", Symbol: "META"},
			{Name: "Netflix", Symbol: "NFLX"},
		}
	}
	if len(cfg.Groups.Indices) == 0 {
		cfg.Groups.Indices = []Instrument{
			{Name: "S&P 500", Symbol: "^GSPC"},
			{Name: "NASDAQ", Symbol: "^IXIC"},
			{Name: "Dow Jones", Symbol: "^DJI"},
			{Name: "VIX", Symbol: "^VIX"},
		}
	}
	if len(cfg.Groups.Sectors) == 0 {
		cfg.Groups.Sectors = []Instrument{
			{Name: "Technology", Symbol: "XLK"},
			{Name: "Healthcare", Symbol: "XLV"},
			{Name: "Financials", Symbol: "XLF"},
			{Name: "Energy", Symbol: "XLE"},
			{Name: "Consumer", Symbol: "XLY"},
			{Name: "Industrials", Symbol: "XLI"},
			{Name: "Utilities", Symbol: "XLU"},
			{Name: "Real Estate", Symbol: "XLRE"},
		}
	}
	if cfg.Charts.Broad == "" {
		cfg.Charts.Broad = "SPY"
	}
	if len(cfg.Charts.Minis) == 0 {
		cfg.Charts.Minis = []string{"AAPL", "TSLA"}
	}
	if cfg.Charts.Focus == "" {
		cfg.Charts.Focus = "NVDA"
	}
	if cfg.Windows.LongDays == 0 {
		cfg.Windows.LongDays = 365
	}
	if cfg.Windows.ShortDays == 0 {
		cfg.Windows.ShortDays = 90
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * 1-5"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Palette.Up == "" {
		cfg.Palette = Palette{
			Up:      "#2ca02c",
			Down:    "#d62728",
			Primary: "#1f77b4",
			Accent:  "#ff7f0e",
			Muted:   "#7f7f7f",
		}
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if len(c.Groups.Watchlist) == 0 {
		return fmt.Errorf("groups.watchlist must not be empty")
	}
	if len(c.Groups.Indices) == 0 {
		return fmt.Errorf("groups.indices must not be empty")
	}
	if c.Windows.LongDays <= 0 || c.Windows.ShortDays <= 0 {
		return fmt.Errorf("windows must be positive")
	}
	if c.Windows.ShortDays > c.Windows.LongDays {
		return fmt.Errorf("windows.short_days must not exceed windows.long_days")
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be %q or %q", "text", "json")
	}
	for _, g := range [][]Instrument{c.Groups.Watchlist, c.Groups.Indices, c.Groups.Sectors} {
		for _, inst := range g {
			if inst.Symbol == "" {
				return fmt.Errorf("instrument %q has no symbol", inst.Name)
			}
		}
	}
	return nil
}
