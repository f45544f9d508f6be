package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Scanner struct {
		ThresholdPercent float64  `yaml:"threshold_percent"`
		MAWindow         int      `yaml:"ma_window"`
		LookbackYears    int      `yaml:"lookback_years"`
		Workers          int      `yaml:"workers"`
		TickerSuffix     string   `yaml:"ticker_suffix"`
		Symbols          []string `yaml:"symbols"`
	} `yaml:"scanner"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Tracker struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"tracker"`
	Proxy string `yaml:"proxy"`
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
	if v := os.Getenv("THRESHOLD_PERCENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scanner.ThresholdPercent = f
		}
	}
	if v := os.Getenv("MA_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scanner.MAWindow = n
		}
	}
	if v := os.Getenv("LOOKBACK_YEARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scanner.LookbackYears = n
		}
	}
	if v := os.Getenv("BARS_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.ListenAddr = ":" + v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Scanner.ThresholdPercent == 0 {
		cfg.Scanner.ThresholdPercent = 20
	}
	if cfg.Scanner.MAWindow == 0 {
		cfg.Scanner.MAWindow = 200
	}
	if cfg.Scanner.LookbackYears == 0 {
		cfg.Scanner.LookbackYears = 3
	}
	if cfg.Scanner.Workers == 0 {
		cfg.Scanner.Workers = 8
	}
	if cfg.Scanner.TickerSuffix == "" {
		cfg.Scanner.TickerSuffix = ".NS"
	}
	if len(cfg.Scanner.Symbols) == 0 {
		cfg.Scanner.Symbols = DefaultSymbols
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":5000"
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 0 18 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/v20_scanner.db"
	}
	if cfg.Tracker.StateFile == "" {
		cfg.Tracker.StateFile = "data/seen_signals.json"
	}

	return cfg, nil
}

// Validate checks that all required fields are in range.
func (c *Config) Validate() error {
	if c.Scanner.ThresholdPercent <= 0 {
		return fmt.Errorf("scanner.threshold_percent must be positive")
	}
	if c.Scanner.MAWindow <= 0 {
		return fmt.Errorf("scanner.ma_window must be positive")
	}
	if c.Scanner.LookbackYears <= 0 {
		return fmt.Errorf("scanner.lookback_years must be positive")
	}
	if len(c.Scanner.Symbols) == 0 {
		return fmt.Errorf("scanner.symbols must not be empty")
	}
	seen := make(map[string]bool, len(c.Scanner.Symbols))
	for _, s := range c.Scanner.Symbols {
		if s == "" {
			return fmt.Errorf("scanner.symbols contains an empty ticker")
		}
		if seen[s] {
			return fmt.Errorf("scanner.symbols contains duplicate ticker %q", s)
		}
		seen[s] = true
	}
	return nil
}
