package domain

import (
	"context"
	"time"
)

// FoodLogEntry represents a single logged meal or snack.
type FoodLogEntry struct {
	ID       int64     `json:"id"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	LoggedAt time.Time `json:"loggedAt"`
}

// DayTotals holds per-day sums of the flow quantities (calories, macros).
type DayTotals struct {
	Day      string  `json:"day"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Entries  int     `json:"entries"`
}

// FoodLogRepository is the port for nutrition-log persistence.
type FoodLogRepository interface {
	AddFoodLogEntry(ctx context.Context, e FoodLogEntry) (int64, error)
	// ListFoodLogEntries returns entries within [from, to), ascending by LoggedAt.
	ListFoodLogEntries(ctx context.Context, from, to time.Time) ([]FoodLogEntry, error)
	DeleteFoodLogEntry(ctx context.Context, id int64) (bool, error)
}
