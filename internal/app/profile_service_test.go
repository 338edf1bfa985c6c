package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitsight/internal/app"
	"fitsight/internal/domain"
)

func TestProfileServiceGet(t *testing.T) {
	stored := &domain.UserProfile{
		HeightCm:      165,
		Sex:           "female",
		BirthDate:     time.Date(1988, 11, 20, 0, 0, 0, 0, time.UTC),
		ActivityLevel: "low",
		Goal:          domain.GoalRecomposition,
	}
	svc := app.NewProfileService(&mockProfileRepo{
		mockProfileReader: mockProfileReader{
			profileFn: func(context.Context) (*domain.UserProfile, error) {
				return stored, nil
			},
		},
	})

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, p)
}

func TestProfileServiceGetMissing(t *testing.T) {
	svc := app.NewProfileService(&mockProfileRepo{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, app.ErrProfileNotFound)
}

func TestProfileServiceSave(t *testing.T) {
	var saved *domain.UserProfile
	svc := app.NewProfileService(&mockProfileRepo{
		saveFn: func(_ context.Context, p *domain.UserProfile) error {
			saved = p
			return nil
		},
	})

	p := &domain.UserProfile{HeightCm: 182, Goal: domain.GoalGeneral}
	require.NoError(t, svc.Save(context.Background(), p))
	assert.Equal(t, p, saved)
}

func TestProfileServiceSaveInvalid(t *testing.T) {
	svc := app.NewProfileService(&mockProfileRepo{
		saveFn: func(context.Context, *domain.UserProfile) error {
			t.Fatal("SaveProfile called for invalid profile")
			return nil
		},
	})

	err := svc.Save(context.Background(), &domain.UserProfile{Goal: domain.GoalFatLoss})
	assert.ErrorContains(t, err, "heightCm")

	err = svc.Save(context.Background(), &domain.UserProfile{HeightCm: 175, Goal: "shred"})
	assert.ErrorContains(t, err, "unknown goal")
}
