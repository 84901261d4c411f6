package workload

import (
	"fmt"
	randv2 "math/rand/v2"
)

// Profile process names accepted in scenario files.
const (
	ProcessConstant = "constant"
	ProcessWeekly   = "weekly"
)

// Stay distribution names accepted in scenario files.
const (
	DistLogNormal   = "lognormal"
	DistExponential = "exponential"
)

// ProfileSpec is the YAML-facing description of an arrival-rate profile.
type ProfileSpec struct {
	Process string `yaml:"process"`
	// RatePerDay is the stationary rate for the constant process.
	RatePerDay float64 `yaml:"rate_per_day,omitempty"`
	// HourRates are the 24 per-hour-of-day rates for the weekly process.
	HourRates []float64 `yaml:"hour_rates,omitempty"`
	// DayFactors optionally scale the hourly rates per day of week (7 values).
	DayFactors []float64 `yaml:"day_factors,omitempty"`
}

// Build validates the fields and constructs the RateProfile.
func (s ProfileSpec) Build() (RateProfile, error) {
	switch s.Process {
	case ProcessConstant, "":
		return NewConstantProfile(s.RatePerDay)
	case ProcessWeekly:
		if len(s.HourRates) != 24 {
			return nil, fmt.Errorf("weekly profile: expected 24 hour_rates, got %d", len(s.HourRates))
		}
		var hours [24]float64
		copy(hours[:], s.HourRates)
		var days [7]float64
		if len(s.DayFactors) > 0 {
			if len(s.DayFactors) != 7 {
				return nil, fmt.Errorf("weekly profile: expected 7 day_factors, got %d", len(s.DayFactors))
			}
			copy(days[:], s.DayFactors)
		}
		return NewWeeklyProfile(hours, days)
	default:
		return nil, fmt.Errorf("unknown arrival process %q (want %s or %s)", s.Process, ProcessConstant, ProcessWeekly)
	}
}

// StaySpec is the YAML-facing description of one stay distribution.
type StaySpec struct {
	Distribution string  `yaml:"distribution,omitempty"` // lognormal (default) or exponential
	MeanDays     float64 `yaml:"mean_days"`
	StdevDays    float64 `yaml:"stdev_days,omitempty"` // lognormal only
}

// Build validates the fields and constructs the StaySampler over src.
func (s StaySpec) Build(src randv2.Source) (StaySampler, error) {
	switch s.Distribution {
	case DistLogNormal, "":
		return NewLogNormalStay(s.MeanDays, s.StdevDays, src)
	case DistExponential:
		return NewExponentialStay(s.MeanDays, src)
	default:
		return nil, fmt.Errorf("unknown stay distribution %q (want %s or %s)", s.Distribution, DistLogNormal, DistExponential)
	}
}
