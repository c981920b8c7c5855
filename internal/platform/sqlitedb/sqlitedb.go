package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// TimeLayout is the UTC text form of every persisted instant. It sorts
// lexically in time order.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

// Open opens the database at dbPath and ensures the schema exists.
func Open(ctx context.Context, dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
PRAGMA foreign_keys = ON;
CREATE TABLE IF NOT EXISTS templates (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  focus_minutes INTEGER NOT NULL,
  short_break_minutes INTEGER NOT NULL,
  long_break_minutes INTEGER NOT NULL,
  cycles INTEGER NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_templates_user ON templates(user_id);
CREATE TABLE IF NOT EXISTS timer_sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  template_id INTEGER,
  duration_minutes INTEGER NOT NULL,
  phase TEXT NOT NULL,
  current_cycle INTEGER NOT NULL DEFAULT 0,
  target_cycles INTEGER NOT NULL DEFAULT 4,
  completed INTEGER NOT NULL DEFAULT 0,
  paused INTEGER NOT NULL DEFAULT 0,
  start_time TEXT NOT NULL,
  start_date TEXT NOT NULL,
  end_time TEXT,
  notes TEXT,
  sentiment_label TEXT,
  sentiment_score REAL,
  analyzed_at TEXT,
  session_group_id TEXT
);
CREATE INDEX IF NOT EXISTS idx_timer_sessions_active ON timer_sessions(user_id, completed);
CREATE INDEX IF NOT EXISTS idx_timer_sessions_dates ON timer_sessions(user_id, start_date);
CREATE INDEX IF NOT EXISTS idx_timer_sessions_group ON timer_sessions(user_id, session_group_id);
CREATE TABLE IF NOT EXISTS scheduled_sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  template_id INTEGER,
  title TEXT,
  start_at TEXT NOT NULL,
  start_date TEXT NOT NULL,
  duration_min INTEGER,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scheduled_sessions_day ON scheduled_sessions(user_id, start_date);
`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func ParseTime(raw string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", raw, err)
	}
	return t, nil
}

// NullTime converts a nullable column to a pointer.
func NullTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := ParseTime(v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func NullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func NullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func NullFloat64(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func BoolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
