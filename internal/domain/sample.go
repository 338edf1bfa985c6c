// Package domain contains the core business entities, ports and the
// pure analytics primitives that operate on them.
package domain

import (
	"context"
	"time"
)

// MetricType identifies the physiological quantity a Sample measures.
type MetricType string

const (
	MetricWeight   MetricType = "weight"
	MetricBodyFat  MetricType = "body_fat"
	MetricLeanMass MetricType = "lean_mass"
	MetricWaist    MetricType = "waist"
)

// KnownMetric reports whether t is one of the supported metric types.
func KnownMetric(t MetricType) bool {
	switch t {
	case MetricWeight, MetricBodyFat, MetricLeanMass, MetricWaist:
		return true
	}
	return false
}

// SampleSource describes where a measurement came from.
type SampleSource string

const (
	SourceManual SampleSource = "manual"
	SourceDevice SampleSource = "device"
	SourceModel  SampleSource = "model"
	SourceLabel  SampleSource = "label"
)

// Sample represents a single timestamped measurement of one metric.
// Samples are append-only facts; the engine never mutates them.
type Sample struct {
	ID         int64        `json:"id"`
	Type       MetricType   `json:"type"`
	Value      float64      `json:"value"`
	Unit       string       `json:"unit"`
	CapturedAt time.Time    `json:"capturedAt"`
	Source     SampleSource `json:"source"`
	Confidence float64      `json:"confidence"`
}

// SampleRepository is the port for measurement persistence.
type SampleRepository interface {
	AddSample(ctx context.Context, s Sample) (int64, error)
	// ListSamples returns samples of the given type within [from, to),
	// ascending by CapturedAt.
	ListSamples(ctx context.Context, t MetricType, from, to time.Time) ([]Sample, error)
	// LatestSample returns the most recent sample of the given type, or nil.
	LatestSample(ctx context.Context, t MetricType) (*Sample, error)
	// LatestSampleInRange returns the most recent sample of the given type
	// within [from, to), or nil if the range holds none.
	LatestSampleInRange(ctx context.Context, t MetricType, from, to time.Time) (*Sample, error)
}
