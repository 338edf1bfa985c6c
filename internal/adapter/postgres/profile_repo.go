package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fitsight/internal/domain"
)

// Profile returns the user profile snapshot, or nil if none has been stored.
func (d *DB) Profile(ctx context.Context) (*domain.UserProfile, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT height_cm, sex, birth_date, activity_level, goal FROM profile WHERE id=1;")

	var p domain.UserProfile
	var goal string
	if err := row.Scan(&p.HeightCm, &p.Sex, &p.BirthDate, &p.ActivityLevel, &goal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Goal = domain.Goal(goal)
	return &p, nil
}

// SaveProfile upserts the single-row profile. The analysis engine only reads
// profiles; this is used by setup tooling.
func (d *DB) SaveProfile(ctx context.Context, p *domain.UserProfile) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profile(id, height_cm, sex, birth_date, activity_level, goal)
		VALUES(1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET height_cm=$1, sex=$2, birth_date=$3, activity_level=$4, goal=$5;`,
		p.HeightCm, p.Sex, p.BirthDate.UTC(), p.ActivityLevel, string(p.Goal),
	)
	return err
}
