package app_test

import (
	"context"
	"time"

	"fitsight/internal/domain"
)

type mockSampleRepo struct {
	addFn           func(ctx context.Context, s domain.Sample) (int64, error)
	listFn          func(ctx context.Context, t domain.MetricType, from, to time.Time) ([]domain.Sample, error)
	latestFn        func(ctx context.Context, t domain.MetricType) (*domain.Sample, error)
	latestInRangeFn func(ctx context.Context, t domain.MetricType, from, to time.Time) (*domain.Sample, error)
}

func (m *mockSampleRepo) AddSample(ctx context.Context, s domain.Sample) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, s)
	}
	return 0, nil
}

func (m *mockSampleRepo) ListSamples(ctx context.Context, t domain.MetricType, from, to time.Time) ([]domain.Sample, error) {
	if m.listFn != nil {
		return m.listFn(ctx, t, from, to)
	}
	return nil, nil
}

func (m *mockSampleRepo) LatestSample(ctx context.Context, t domain.MetricType) (*domain.Sample, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx, t)
	}
	return nil, nil
}

func (m *mockSampleRepo) LatestSampleInRange(ctx context.Context, t domain.MetricType, from, to time.Time) (*domain.Sample, error) {
	if m.latestInRangeFn != nil {
		return m.latestInRangeFn(ctx, t, from, to)
	}
	return nil, nil
}

type mockFoodRepo struct {
	addFn    func(ctx context.Context, e domain.FoodLogEntry) (int64, error)
	listFn   func(ctx context.Context, from, to time.Time) ([]domain.FoodLogEntry, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockFoodRepo) AddFoodLogEntry(ctx context.Context, e domain.FoodLogEntry) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, e)
	}
	return 0, nil
}

func (m *mockFoodRepo) ListFoodLogEntries(ctx context.Context, from, to time.Time) ([]domain.FoodLogEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, from, to)
	}
	return nil, nil
}

func (m *mockFoodRepo) DeleteFoodLogEntry(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return false, nil
}

type mockScanRepo struct {
	createFn func(ctx context.Context, s *domain.BodyCompositionScan) (int64, error)
	latestFn func(ctx context.Context) (*domain.BodyCompositionScan, error)
	listFn   func(ctx context.Context, limit int) ([]domain.BodyCompositionScan, error)
}

func (m *mockScanRepo) CreateScan(ctx context.Context, s *domain.BodyCompositionScan) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return 0, nil
}

func (m *mockScanRepo) LatestScan(ctx context.Context) (*domain.BodyCompositionScan, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx)
	}
	return nil, nil
}

func (m *mockScanRepo) ListScans(ctx context.Context, limit int) ([]domain.BodyCompositionScan, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

type mockProfileReader struct {
	profileFn func(ctx context.Context) (*domain.UserProfile, error)
}

func (m *mockProfileReader) Profile(ctx context.Context) (*domain.UserProfile, error) {
	if m.profileFn != nil {
		return m.profileFn(ctx)
	}
	return nil, nil
}

type mockProfileRepo struct {
	mockProfileReader
	saveFn func(ctx context.Context, p *domain.UserProfile) error
}

func (m *mockProfileRepo) SaveProfile(ctx context.Context, p *domain.UserProfile) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, p)
	}
	return nil
}

type mockVision struct {
	analyzeFn func(ctx context.Context, photoURL, notes string) (string, error)
}

func (m *mockVision) AnalyzePhoto(ctx context.Context, photoURL, notes string) (string, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, photoURL, notes)
	}
	return "", nil
}

func testProfile(goal domain.Goal) *mockProfileReader {
	return &mockProfileReader{
		profileFn: func(context.Context) (*domain.UserProfile, error) {
			return &domain.UserProfile{
				HeightCm:      178,
				Sex:           "male",
				BirthDate:     time.Date(1991, 7, 2, 0, 0, 0, 0, time.UTC),
				ActivityLevel: "moderate",
				Goal:          goal,
			}, nil
		},
	}
}
