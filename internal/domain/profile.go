package domain

import (
	"context"
	"time"
)

// Goal is the user's primary training objective.
type Goal string

const (
	GoalFatLoss       Goal = "fat_loss"
	GoalMuscleGain    Goal = "muscle_gain"
	GoalRecomposition Goal = "recomposition"
	GoalGeneral       Goal = "general_fitness"
)

// UserProfile is a read-only snapshot of the single user's biometric and
// goal fields. The engine uses it to weight and interpret scores; it never
// writes it.
type UserProfile struct {
	HeightCm      float64   `json:"heightCm"`
	Sex           string    `json:"sex"`
	BirthDate     time.Time `json:"birthDate"`
	ActivityLevel string    `json:"activityLevel"`
	Goal          Goal      `json:"goal"`
}

// KnownGoal reports whether g is one of the supported goals.
func KnownGoal(g Goal) bool {
	switch g {
	case GoalFatLoss, GoalMuscleGain, GoalRecomposition, GoalGeneral:
		return true
	}
	return false
}

// ProfileReader is the port for reading the user profile snapshot.
// A missing profile is reported as (nil, nil).
type ProfileReader interface {
	Profile(ctx context.Context) (*UserProfile, error)
}

// ProfileRepository additionally allows installing the snapshot. Only the
// setup surface writes profiles; the analysis paths depend on ProfileReader
// alone.
type ProfileRepository interface {
	ProfileReader
	SaveProfile(ctx context.Context, p *UserProfile) error
}
