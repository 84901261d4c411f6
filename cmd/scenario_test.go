package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardsim/wardsim/sim"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenario_Full(t *testing.T) {
	path := writeScenario(t, `
horizon_days: 30
warmup_days: 3
beds: 20
seed: 7
long_stay_prob: 0.2
short_stay:
  distribution: lognormal
  mean_days: 0.75
  stdev_days: 0.2
long_stay:
  distribution: exponential
  mean_days: 2.5
arrival:
  process: constant
  rate_per_day: 12
replications: 25
`)

	cfg, reps, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, 25, reps)
	assert.Equal(t, 30.0, cfg.HorizonDays)
	assert.Equal(t, 3.0, cfg.WarmupDays)
	assert.Equal(t, 20, cfg.Beds)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 0.2, cfg.LongStayProb)
	assert.Equal(t, "exponential", cfg.LongStay.Distribution)
	assert.Equal(t, 2.5, cfg.LongStay.MeanDays)
	assert.Equal(t, 12.0, cfg.Arrival.RatePerDay)
}

func TestLoadScenario_DefaultsFillAbsentFields(t *testing.T) {
	path := writeScenario(t, `
beds: 8
`)

	cfg, reps, err := LoadScenario(path)
	require.NoError(t, err)

	def := sim.DefaultRunConfig()
	assert.Equal(t, 8, cfg.Beds)
	assert.Equal(t, 10, reps)
	assert.Equal(t, def.HorizonDays, cfg.HorizonDays)
	assert.Equal(t, def.Seed, cfg.Seed)
	assert.Equal(t, def.ShortStay, cfg.ShortStay)
	assert.Equal(t, def.Arrival, cfg.Arrival)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, _, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "beds: [not a number\n")
	_, _, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse scenario file")
}

func TestLoadScenario_InvalidConfig(t *testing.T) {
	path := writeScenario(t, "beds: 0\n")
	_, _, err := LoadScenario(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, sim.ErrInvalidConfig)
}

func TestLoadScenario_InvalidReplications(t *testing.T) {
	path := writeScenario(t, "replications: -2\n")
	_, _, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replications must be >= 1")
}
