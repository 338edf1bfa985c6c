package app

import (
	"context"
	"errors"
	"fmt"

	"fitsight/internal/domain"
)

// ProfileService manages the single-user profile snapshot the analysis
// pipeline reads from.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the profile, or ErrProfileNotFound if none has been set up.
func (s *ProfileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	p, err := s.repo.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// Save validates and installs the profile snapshot.
func (s *ProfileService) Save(ctx context.Context, p *domain.UserProfile) error {
	if p.HeightCm <= 0 {
		return errors.New("heightCm must be > 0")
	}
	if !domain.KnownGoal(p.Goal) {
		return fmt.Errorf("unknown goal %q", p.Goal)
	}
	return s.repo.SaveProfile(ctx, p)
}
