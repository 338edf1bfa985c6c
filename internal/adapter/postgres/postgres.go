package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS samples (id BIGSERIAL PRIMARY KEY, metric TEXT NOT NULL, value DOUBLE PRECISION NOT NULL, unit TEXT NOT NULL, captured_at TIMESTAMPTZ NOT NULL, source TEXT NOT NULL, confidence DOUBLE PRECISION NOT NULL DEFAULT 1);",
		"CREATE INDEX IF NOT EXISTS idx_samples_metric_captured_at ON samples(metric, captured_at);",
		"CREATE TABLE IF NOT EXISTS food_log (id BIGSERIAL PRIMARY KEY, calories DOUBLE PRECISION NOT NULL, protein DOUBLE PRECISION NOT NULL, carbs DOUBLE PRECISION NOT NULL, fat DOUBLE PRECISION NOT NULL, logged_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_food_log_logged_at ON food_log(logged_at);",
		"CREATE TABLE IF NOT EXISTS scans (id BIGSERIAL PRIMARY KEY, captured_at TIMESTAMPTZ NOT NULL, body_fat_min DOUBLE PRECISION NOT NULL, body_fat_max DOUBLE PRECISION NOT NULL, body_fat_confidence INT NOT NULL, adjusted_confidence INT NOT NULL, lean_mass_min DOUBLE PRECISION NOT NULL, lean_mass_max DOUBLE PRECISION NOT NULL, change_direction TEXT NOT NULL, rapid_change BOOLEAN NOT NULL, safety_alert TEXT NOT NULL DEFAULT '', data_completeness DOUBLE PRECISION NOT NULL, observations TEXT[] NOT NULL DEFAULT '{}', days_logged INT NOT NULL DEFAULT 0, avg_daily_calories DOUBLE PRECISION NOT NULL DEFAULT 0, avg_daily_protein DOUBLE PRECISION NOT NULL DEFAULT 0);",
		"CREATE INDEX IF NOT EXISTS idx_scans_captured_at ON scans(captured_at);",
		"CREATE TABLE IF NOT EXISTS profile (id INT PRIMARY KEY CHECK(id = 1), height_cm DOUBLE PRECISION NOT NULL, sex TEXT NOT NULL, birth_date TIMESTAMPTZ NOT NULL, activity_level TEXT NOT NULL, goal TEXT NOT NULL);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
