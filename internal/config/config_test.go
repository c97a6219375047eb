package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file should fall back to defaults: %v", err)
	}
	if len(cfg.Universe.Symbols) != 1 || cfg.Universe.Symbols[0] != "SPX500" {
		t.Errorf("unexpected default symbols: %v", cfg.Universe.Symbols)
	}
	if cfg.DataSource.Provider != "yahoo" {
		t.Errorf("unexpected default provider: %q", cfg.DataSource.Provider)
	}
	if cfg.DataSource.HistoryDays != 300 {
		t.Errorf("unexpected default history days: %d", cfg.DataSource.HistoryDays)
	}
	if cfg.Schedule.DailyCron != "0 0 22 * * 1-5" {
		t.Errorf("unexpected default cron: %q", cfg.Schedule.DailyCron)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
universe:
  symbols: ["SPX500", "NDX100"]
data_source:
  provider: synthetic
  history_days: 400
analysis:
  rsi_period: 21
  min_history: 60
schedule:
  daily_cron: "0 30 21 * * 1-5"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Universe.Symbols) != 2 {
		t.Errorf("expected 2 symbols, got %v", cfg.Universe.Symbols)
	}
	if cfg.DataSource.Provider != "synthetic" || cfg.DataSource.HistoryDays != 400 {
		t.Errorf("data source not parsed: %+v", cfg.DataSource)
	}
	if cfg.Analysis.RSIPeriod != 21 || cfg.Analysis.MinHistory != 60 {
		t.Errorf("analysis params not parsed: %+v", cfg.Analysis)
	}
	if cfg.Schedule.DailyCron != "0 30 21 * * 1-5" {
		t.Errorf("cron not parsed: %q", cfg.Schedule.DailyCron)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SIGNAL_SYMBOLS", "AAA, BBB ,CCC")
	t.Setenv("DATA_PROVIDER", "file")
	t.Setenv("DATA_DIR", "/tmp/candles")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"AAA", "BBB", "CCC"}
	if len(cfg.Universe.Symbols) != 3 {
		t.Fatalf("expected 3 symbols, got %v", cfg.Universe.Symbols)
	}
	for i, s := range want {
		if cfg.Universe.Symbols[i] != s {
			t.Errorf("symbol %d: expected %q, got %q", i, s, cfg.Universe.Symbols[i])
		}
	}
	if cfg.DataSource.Provider != "file" || cfg.DataSource.DataDir != "/tmp/candles" {
		t.Errorf("env overrides not applied: %+v", cfg.DataSource)
	}
}

func TestValidate_BadProvider(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.DataSource.Provider = "ouija"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider should fail validation")
	}
}

func TestValidate_TelegramRequiresChatID(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Telegram.BotToken = "123:abc"
	cfg.Telegram.ChatID = ""
	if err := cfg.Validate(); err == nil {
		t.Error("bot token without chat id should fail validation")
	}
	cfg.Telegram.ChatID = "42"
	if err := cfg.Validate(); err != nil {
		t.Errorf("token plus chat id should validate: %v", err)
	}
}
