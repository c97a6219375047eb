package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"SignalSentinel/internal/analyzer"
)

// Config holds all application configuration.
type Config struct {
	Universe struct {
		Symbols []string `yaml:"symbols"`
	} `yaml:"universe"`
	DataSource struct {
		Provider    string `yaml:"provider"` // yahoo | file | synthetic
		DataDir     string `yaml:"data_dir"`
		HistoryDays int    `yaml:"history_days"`
	} `yaml:"data_source"`
	Analysis analyzer.Params `yaml:"analysis"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Snapshot struct {
		Path string `yaml:"path"`
	} `yaml:"snapshot"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SIGNAL_SYMBOLS"); v != "" {
		cfg.Universe.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataSource.DataDir = v
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
	if v := os.Getenv("SNAPSHOT_PATH"); v != "" {
		cfg.Snapshot.Path = v
	}

	// Defaults
	if len(cfg.Universe.Symbols) == 0 {
		cfg.Universe.Symbols = []string{"SPX500"}
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.DataSource.DataDir == "" {
		cfg.DataSource.DataDir = "data/candles"
	}
	if cfg.DataSource.HistoryDays == 0 {
		cfg.DataSource.HistoryDays = 300
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/signal_sentinel.db"
	}
	if cfg.Snapshot.Path == "" {
		cfg.Snapshot.Path = "data/signals_latest.json"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Universe.Symbols) == 0 {
		return fmt.Errorf("universe.symbols must not be empty")
	}
	switch c.DataSource.Provider {
	case "yahoo", "file", "synthetic":
	default:
		return fmt.Errorf("data_source.provider must be yahoo, file, or synthetic, got %q", c.DataSource.Provider)
	}
	if c.DataSource.Provider == "file" && c.DataSource.DataDir == "" {
		return fmt.Errorf("data_source.data_dir is required for the file provider")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}

func splitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			symbols = append(symbols, p)
		}
	}
	return symbols
}
