package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"SignalSentinel/internal/model"
)

// SQLiteRecorder persists signal history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while
	// the batch writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS signal_history (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			symbol           TEXT NOT NULL,
			score            INTEGER,
			fulfillment_rate INTEGER,
			fulfilled        INTEGER,
			total            INTEGER,
			score_status     TEXT,
			ma_position      TEXT,
			days_since_cross INTEGER,
			last_cross_type  TEXT,
			rsi              REAL,
			rsi_status       TEXT,
			macd             REAL,
			macd_signal      REAL,
			macd_status      TEXT,
			percent_b        REAL,
			bandwidth        REAL,
			bollinger_status TEXT,
			adx              REAL,
			adx_status       TEXT,
			atr              REAL,
			atr_percent      REAL,
			atr_status       TEXT,
			volume_ratio     REAL,
			volume_status    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signal_ts ON signal_history(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_signal_symbol ON signal_history(symbol, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable converts an optional value to a driver-friendly NULL or float.
func nullable(v model.Value) interface{} {
	if !v.Valid {
		return nil
	}
	return v.V
}

// RecordSignals stores one instrument's analysis as a history row.
func (r *SQLiteRecorder) RecordSignals(symbol string, a *model.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var lastCrossType string
	if a.MACross != nil && a.MACross.LastCross != nil {
		lastCrossType = string(a.MACross.LastCross.Type)
	}

	score := a.SignalScore

	_, err := r.db.Exec(`INSERT INTO signal_history
		(timestamp, symbol, score, fulfillment_rate, fulfilled, total, score_status,
		 ma_position, days_since_cross, last_cross_type,
		 rsi, rsi_status, macd, macd_signal, macd_status,
		 percent_b, bandwidth, bollinger_status,
		 adx, adx_status, atr, atr_percent, atr_status,
		 volume_ratio, volume_status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), symbol,
		score.Score, score.FulfillmentRate, score.Fulfilled, score.Total, string(score.Status.Type),
		string(a.MACross.CurrentPosition), a.MACross.DaysSinceCross, lastCrossType,
		nullable(a.RSI.Current), string(a.RSI.Status.Type),
		nullable(a.MACD.Current.MACD), nullable(a.MACD.Current.Signal), string(a.MACD.Status.Type),
		nullable(a.Bollinger.Current.PercentB), nullable(a.Bollinger.Current.Bandwidth), string(a.Bollinger.Status.Type),
		nullable(a.ADX.Current), string(a.ADX.Status.Type),
		nullable(a.ATR.Current), nullable(a.ATR.Percent), string(a.ATR.Status.Type),
		a.Volume.Ratio, string(a.Volume.Status.Type),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
