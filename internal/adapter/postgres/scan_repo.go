package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"fitsight/internal/domain"
)

const scanColumns = "id, captured_at, body_fat_min, body_fat_max, body_fat_confidence, adjusted_confidence, lean_mass_min, lean_mass_max, change_direction, rapid_change, safety_alert, data_completeness, observations, days_logged, avg_daily_calories, avg_daily_protein"

// CreateScan inserts a new body-composition scan and fills in its ID.
func (d *DB) CreateScan(ctx context.Context, s *domain.BodyCompositionScan) (int64, error) {
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO scans(captured_at, body_fat_min, body_fat_max, body_fat_confidence, adjusted_confidence,
			lean_mass_min, lean_mass_max, change_direction, rapid_change, safety_alert, data_completeness,
			observations, days_logged, avg_daily_calories, avg_daily_protein)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id;`,
		s.CapturedAt.UTC(), s.BodyFatMin, s.BodyFatMax, s.BodyFatConfidence, s.AdjustedConfidence,
		s.LeanMassMin, s.LeanMassMax, string(s.ChangeDirection), s.RapidChangeDetected, s.SafetyAlert,
		s.DataCompleteness, pq.Array(s.Observations), s.Context.DaysLogged, s.Context.AvgDailyCalories,
		s.Context.AvgDailyProtein,
	).Scan(&s.ID)
	return s.ID, err
}

// LatestScan returns the most recent scan, or nil if none exist.
func (d *DB) LatestScan(ctx context.Context) (*domain.BodyCompositionScan, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT "+scanColumns+" FROM scans ORDER BY captured_at DESC LIMIT 1;")
	s, err := scanBodyScan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// ListScans returns up to limit scans, most recent first.
func (d *DB) ListScans(ctx context.Context, limit int) ([]domain.BodyCompositionScan, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+scanColumns+" FROM scans ORDER BY captured_at DESC LIMIT $1;", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.BodyCompositionScan, 0, limit)
	for rows.Next() {
		s, err := scanBodyScan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanBodyScan(r rowScanner) (domain.BodyCompositionScan, error) {
	var s domain.BodyCompositionScan
	var direction string
	err := r.Scan(&s.ID, &s.CapturedAt, &s.BodyFatMin, &s.BodyFatMax, &s.BodyFatConfidence,
		&s.AdjustedConfidence, &s.LeanMassMin, &s.LeanMassMax, &direction, &s.RapidChangeDetected,
		&s.SafetyAlert, &s.DataCompleteness, pq.Array(&s.Observations), &s.Context.DaysLogged,
		&s.Context.AvgDailyCalories, &s.Context.AvgDailyProtein)
	if err != nil {
		return domain.BodyCompositionScan{}, err
	}
	s.ChangeDirection = domain.GoalDirection(direction)
	return s, nil
}
