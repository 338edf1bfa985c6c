package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func TestDefaults(t *testing.T) {
	cfg, err := load(t, map[string]string{
		"DATABASE_URL": "postgres://localhost/fitsight",
	})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0.01, cfg.TrendThreshold)
	assert.Equal(t, 2.0, cfg.RapidChangeDelta)
	assert.Equal(t, 14, cfg.RapidChangeWindowDays)

	policy := cfg.Policy()
	assert.Equal(t, 0.01, policy.TrendThreshold)
	assert.Equal(t, 14, policy.RapidChangeWindowDays)
}

func TestDatabaseURLRequired(t *testing.T) {
	_, err := load(t, map[string]string{})
	require.Error(t, err)
}

func TestOverrides(t *testing.T) {
	cfg, err := load(t, map[string]string{
		"DATABASE_URL":       "postgres://localhost/fitsight",
		"ADDR":               ":9090",
		"TREND_THRESHOLD":    "0.02",
		"RAPID_CHANGE_DELTA": "3.5",
		"LOG_JSON":           "true",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 0.02, cfg.TrendThreshold)
	assert.Equal(t, 3.5, cfg.RapidChangeDelta)
	assert.True(t, cfg.LogFormatJSON)
}
