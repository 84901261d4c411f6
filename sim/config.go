package sim

import (
	"errors"
	"fmt"

	"github.com/wardsim/wardsim/sim/workload"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
// Validation runs before a replication starts; a run never fails mid-flight
// on configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// RunConfig is the immutable configuration for one replication. The field
// set is structurally stable (fixed names and scalar types) so collaborator
// layers can serialize it as a plain isomorphism.
type RunConfig struct {
	// HorizonDays is the simulated duration of the replication.
	HorizonDays float64 `yaml:"horizon_days"`
	// WarmupDays is excluded from statistics (not from the event log).
	WarmupDays float64 `yaml:"warmup_days,omitempty"`
	// Beds is the ward's bed capacity.
	Beds int `yaml:"beds"`
	// WaitQueueBound is the sanity bound for the wait queue; exceeding it
	// raises a diagnostic warning, not an error. 0 selects the default.
	WaitQueueBound int `yaml:"wait_queue_bound,omitempty"`
	// Seed is the master seed for this replication's random streams.
	Seed int64 `yaml:"seed"`

	// LongStayProb is the probability a patient is a long-stayer.
	LongStayProb float64 `yaml:"long_stay_prob"`
	// ShortStay and LongStay parameterize the two stay distributions.
	ShortStay workload.StaySpec `yaml:"short_stay"`
	LongStay  workload.StaySpec `yaml:"long_stay"`

	// Arrival describes the time-dependent arrival-rate profile.
	Arrival workload.ProfileSpec `yaml:"arrival"`
	// ArrivalTimes, when non-empty, injects these arrival instants directly
	// and bypasses the thinning process. Used by tests and trace replay.
	ArrivalTimes []float64 `yaml:"arrival_times,omitempty"`
	// MaxThinningRejects caps consecutive thinning rejections before the
	// arrival process is declared degenerate. 0 selects the default.
	MaxThinningRejects int `yaml:"max_thinning_rejects,omitempty"`
}

// DefaultRunConfig returns the reference acute-ward scenario: a 15-bed ward
// over one simulated week, short stays of 18h and long stays of 30h
// (lognormal, 5h spread), one patient in ten a long-stayer.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		HorizonDays:  7,
		Beds:         15,
		Seed:         42,
		LongStayProb: 0.1,
		ShortStay:    workload.StaySpec{Distribution: workload.DistLogNormal, MeanDays: 18.0 / 24, StdevDays: 5.0 / 24},
		LongStay:     workload.StaySpec{Distribution: workload.DistLogNormal, MeanDays: 30.0 / 24, StdevDays: 5.0 / 24},
		Arrival:      workload.ProfileSpec{Process: workload.ProcessConstant, RatePerDay: 8},
	}
}

// Validate checks every parameter range before a run starts.
func (c RunConfig) Validate() error {
	if c.HorizonDays <= 0 {
		return fmt.Errorf("%w: horizon must be > 0, got %v", ErrInvalidConfig, c.HorizonDays)
	}
	if c.WarmupDays < 0 || c.WarmupDays >= c.HorizonDays {
		return fmt.Errorf("%w: warmup must be in [0, horizon), got %v", ErrInvalidConfig, c.WarmupDays)
	}
	if c.Beds < 1 {
		return fmt.Errorf("%w: capacity must be >= 1, got %d", ErrInvalidConfig, c.Beds)
	}
	if c.WaitQueueBound < 0 {
		return fmt.Errorf("%w: wait queue bound must be >= 0, got %d", ErrInvalidConfig, c.WaitQueueBound)
	}
	if c.LongStayProb < 0 || c.LongStayProb > 1 {
		return fmt.Errorf("%w: long-stay probability must be in [0,1], got %v", ErrInvalidConfig, c.LongStayProb)
	}
	for _, stay := range []struct {
		name string
		spec workload.StaySpec
	}{{"short_stay", c.ShortStay}, {"long_stay", c.LongStay}} {
		if stay.spec.MeanDays <= 0 {
			return fmt.Errorf("%w: %s mean must be > 0, got %v", ErrInvalidConfig, stay.name, stay.spec.MeanDays)
		}
		if (stay.spec.Distribution == workload.DistLogNormal || stay.spec.Distribution == "") && stay.spec.StdevDays <= 0 {
			return fmt.Errorf("%w: %s stdev must be > 0, got %v", ErrInvalidConfig, stay.name, stay.spec.StdevDays)
		}
	}
	if len(c.ArrivalTimes) > 0 {
		prev := 0.0
		for i, t := range c.ArrivalTimes {
			if t < 0 || t < prev {
				return fmt.Errorf("%w: arrival_times must be non-negative and non-decreasing (index %d)", ErrInvalidConfig, i)
			}
			prev = t
		}
	} else if _, err := c.Arrival.Build(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.MaxThinningRejects < 0 {
		return fmt.Errorf("%w: max_thinning_rejects must be >= 0, got %d", ErrInvalidConfig, c.MaxThinningRejects)
	}
	return nil
}
