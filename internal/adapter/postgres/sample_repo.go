package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitsight/internal/domain"
)

// AddSample inserts a new measurement.
func (d *DB) AddSample(ctx context.Context, s domain.Sample) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO samples(metric, value, unit, captured_at, source, confidence) VALUES($1, $2, $3, $4, $5, $6) RETURNING id;",
		string(s.Type), s.Value, s.Unit, s.CapturedAt.UTC(), string(s.Source), s.Confidence,
	).Scan(&id)
	return id, err
}

// ListSamples returns samples of one metric within [from, to), oldest first.
func (d *DB) ListSamples(ctx context.Context, t domain.MetricType, from, to time.Time) ([]domain.Sample, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, metric, value, unit, captured_at, source, confidence FROM samples WHERE metric=$1 AND captured_at >= $2 AND captured_at < $3 ORDER BY captured_at ASC;",
		string(t), from.UTC(), to.UTC(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Sample
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// LatestSample returns the most recent sample of one metric, or nil.
func (d *DB) LatestSample(ctx context.Context, t domain.MetricType) (*domain.Sample, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, metric, value, unit, captured_at, source, confidence FROM samples WHERE metric=$1 ORDER BY captured_at DESC LIMIT 1;",
		string(t),
	)
	return scanSampleRow(row)
}

// LatestSampleInRange returns the most recent sample of one metric within
// [from, to), or nil if the range holds none.
func (d *DB) LatestSampleInRange(ctx context.Context, t domain.MetricType, from, to time.Time) (*domain.Sample, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, metric, value, unit, captured_at, source, confidence FROM samples WHERE metric=$1 AND captured_at >= $2 AND captured_at < $3 ORDER BY captured_at DESC LIMIT 1;",
		string(t), from.UTC(), to.UTC(),
	)
	return scanSampleRow(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSample(r rowScanner) (domain.Sample, error) {
	var s domain.Sample
	var metric, source string
	if err := r.Scan(&s.ID, &metric, &s.Value, &s.Unit, &s.CapturedAt, &source, &s.Confidence); err != nil {
		return domain.Sample{}, err
	}
	s.Type = domain.MetricType(metric)
	s.Source = domain.SampleSource(source)
	return s, nil
}

func scanSampleRow(row *sql.Row) (*domain.Sample, error) {
	s, err := scanSample(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
