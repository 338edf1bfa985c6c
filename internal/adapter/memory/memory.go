// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitsight/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu      sync.Mutex
	samples []domain.Sample
	entries []domain.FoodLogEntry
	scans   []domain.BodyCompositionScan
	profile *domain.UserProfile

	sampleIDCounter int64
	entryIDCounter  int64
	scanIDCounter   int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.SampleRepository = (*DB)(nil)
var _ domain.FoodLogRepository = (*DB)(nil)
var _ domain.ScanRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)

// --- SampleRepository ---

// AddSample stores a measurement.
func (db *DB) AddSample(ctx context.Context, s domain.Sample) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.sampleIDCounter++
	s.ID = db.sampleIDCounter
	db.samples = append(db.samples, s)
	return s.ID, nil
}

// ListSamples returns samples of one type within [from, to), ascending.
func (db *DB) ListSamples(ctx context.Context, t domain.MetricType, from, to time.Time) ([]domain.Sample, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.Sample
	for _, s := range db.samples {
		if s.Type == t && !s.CapturedAt.Before(from) && s.CapturedAt.Before(to) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CapturedAt.Before(out[j].CapturedAt) })
	return out, nil
}

// LatestSample returns the most recent sample of one type, or nil.
func (db *DB) LatestSample(ctx context.Context, t domain.MetricType) (*domain.Sample, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.latestBetween(t, time.Time{}, time.Time{}), nil
}

// LatestSampleInRange returns the most recent sample of one type within
// [from, to), or nil.
func (db *DB) LatestSampleInRange(ctx context.Context, t domain.MetricType, from, to time.Time) (*domain.Sample, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.latestBetween(t, from, to), nil
}

// latestBetween finds the newest matching sample; zero bounds mean unbounded.
// Callers must hold db.mu.
func (db *DB) latestBetween(t domain.MetricType, from, to time.Time) *domain.Sample {
	var latest *domain.Sample
	for i := range db.samples {
		s := &db.samples[i]
		if s.Type != t {
			continue
		}
		if !from.IsZero() && s.CapturedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !s.CapturedAt.Before(to) {
			continue
		}
		if latest == nil || s.CapturedAt.After(latest.CapturedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil
	}
	// return a copy
	ret := *latest
	return &ret
}

// --- FoodLogRepository ---

// AddFoodLogEntry stores a food-log entry.
func (db *DB) AddFoodLogEntry(ctx context.Context, e domain.FoodLogEntry) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.entryIDCounter++
	e.ID = db.entryIDCounter
	db.entries = append(db.entries, e)
	return e.ID, nil
}

// ListFoodLogEntries returns entries within [from, to), ascending.
func (db *DB) ListFoodLogEntries(ctx context.Context, from, to time.Time) ([]domain.FoodLogEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.FoodLogEntry
	for _, e := range db.entries {
		if !e.LoggedAt.Before(from) && e.LoggedAt.Before(to) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoggedAt.Before(out[j].LoggedAt) })
	return out, nil
}

// DeleteFoodLogEntry removes an entry by ID.
func (db *DB) DeleteFoodLogEntry(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, e := range db.entries {
		if e.ID == id {
			db.entries = append(db.entries[:i], db.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- ScanRepository ---

// CreateScan stores a scan.
func (db *DB) CreateScan(ctx context.Context, s *domain.BodyCompositionScan) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.scanIDCounter++
	stored := *s
	stored.ID = db.scanIDCounter
	db.scans = append(db.scans, stored)
	return stored.ID, nil
}

// LatestScan returns the most recent scan, or nil.
func (db *DB) LatestScan(ctx context.Context) (*domain.BodyCompositionScan, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var latest *domain.BodyCompositionScan
	for i := range db.scans {
		s := &db.scans[i]
		if latest == nil || s.CapturedAt.After(latest.CapturedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, nil
	}
	ret := *latest
	return &ret, nil
}

// ListScans returns up to limit scans, most recent first.
func (db *DB) ListScans(ctx context.Context, limit int) ([]domain.BodyCompositionScan, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.BodyCompositionScan, len(db.scans))
	copy(out, db.scans)

	sort.Slice(out, func(i, j int) bool {
		return out[i].CapturedAt.After(out[j].CapturedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- ProfileReader ---

// Profile returns the stored profile snapshot, or nil if none was set.
func (db *DB) Profile(ctx context.Context) (*domain.UserProfile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.profile == nil {
		return nil, nil
	}
	ret := *db.profile
	return &ret, nil
}

// SaveProfile installs the snapshot returned by Profile.
func (db *DB) SaveProfile(ctx context.Context, p *domain.UserProfile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	stored := *p
	db.profile = &stored
	return nil
}

// SetProfile is a test convenience around SaveProfile.
func (db *DB) SetProfile(p *domain.UserProfile) {
	_ = db.SaveProfile(context.Background(), p)
}
