package postgres

import (
	"context"
	"time"

	"fitsight/internal/domain"
)

// AddFoodLogEntry inserts a new food-log entry.
func (d *DB) AddFoodLogEntry(ctx context.Context, e domain.FoodLogEntry) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO food_log(calories, protein, carbs, fat, logged_at) VALUES($1, $2, $3, $4, $5) RETURNING id;",
		e.Calories, e.Protein, e.Carbs, e.Fat, e.LoggedAt.UTC(),
	).Scan(&id)
	return id, err
}

// ListFoodLogEntries returns entries within [from, to), oldest first.
func (d *DB) ListFoodLogEntries(ctx context.Context, from, to time.Time) ([]domain.FoodLogEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, calories, protein, carbs, fat, logged_at FROM food_log WHERE logged_at >= $1 AND logged_at < $2 ORDER BY logged_at ASC;",
		from.UTC(), to.UTC(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.FoodLogEntry
	for rows.Next() {
		var e domain.FoodLogEntry
		if err := rows.Scan(&e.ID, &e.Calories, &e.Protein, &e.Carbs, &e.Fat, &e.LoggedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// DeleteFoodLogEntry removes an entry by ID. Returns whether a row was removed.
func (d *DB) DeleteFoodLogEntry(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM food_log WHERE id=$1;", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
