// Package workload provides the stochastic inputs of the ward simulation:
// the time-dependent arrival process and the length-of-stay model.
//
// All samplers draw from an injected *rand.Rand (or rand.Source) owned by
// the caller, never from the global generator, so replications stay
// reproducible and independent.
package workload

import (
	"fmt"
	"math"
)

// RateProfile maps simulated time (in fractional days) to an instantaneous
// arrival rate (patients per day), plus a known upper bound used by the
// thinning sampler. Implementations must be pure lookups.
type RateProfile interface {
	// Rate returns the arrival rate (per day) at simulated time t (days).
	Rate(t float64) float64
	// MaxRate returns an upper bound of Rate over all t. Must be > 0.
	MaxRate() float64
}

// ConstantProfile is a stationary arrival process.
type ConstantProfile struct {
	PerDay float64
}

func (p ConstantProfile) Rate(t float64) float64 { return p.PerDay }
func (p ConstantProfile) MaxRate() float64       { return p.PerDay }

// NewConstantProfile validates and builds a constant-rate profile.
func NewConstantProfile(perDay float64) (ConstantProfile, error) {
	if perDay <= 0 || math.IsNaN(perDay) || math.IsInf(perDay, 0) {
		return ConstantProfile{}, fmt.Errorf("constant profile: rate must be > 0, got %v", perDay)
	}
	return ConstantProfile{PerDay: perDay}, nil
}

// WeeklyProfile is a step-function rate over hour-of-day, optionally scaled
// by a day-of-week factor. Day 0 of the simulated clock is day-of-week 0;
// the engine imposes no particular calendar beyond that.
type WeeklyProfile struct {
	// HourRates holds the arrival rate (per day) in effect during each
	// hour of the day.
	HourRates [24]float64
	// DayFactors scales HourRates per day of week. A zero value means
	// no scaling (all ones).
	DayFactors [7]float64

	maxRate float64
}

// NewWeeklyProfile validates rates and precomputes the thinning bound.
func NewWeeklyProfile(hourRates [24]float64, dayFactors [7]float64) (*WeeklyProfile, error) {
	allZeroFactors := true
	for _, f := range dayFactors {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("weekly profile: day factor must be >= 0, got %v", f)
		}
		if f != 0 {
			allZeroFactors = false
		}
	}
	if allZeroFactors {
		for i := range dayFactors {
			dayFactors[i] = 1
		}
	}

	maxHour := 0.0
	for _, r := range hourRates {
		if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("weekly profile: hourly rate must be >= 0, got %v", r)
		}
		maxHour = math.Max(maxHour, r)
	}
	maxFactor := 0.0
	for _, f := range dayFactors {
		maxFactor = math.Max(maxFactor, f)
	}
	maxRate := maxHour * maxFactor
	if maxRate <= 0 {
		return nil, fmt.Errorf("weekly profile: rate function is identically zero")
	}

	return &WeeklyProfile{HourRates: hourRates, DayFactors: dayFactors, maxRate: maxRate}, nil
}

func (p *WeeklyProfile) Rate(t float64) float64 {
	if t < 0 {
		t = 0
	}
	day := int(math.Floor(t)) % 7
	frac := t - math.Floor(t)
	hour := int(frac * 24)
	if hour > 23 {
		hour = 23
	}
	return p.HourRates[hour] * p.DayFactors[day]
}

func (p *WeeklyProfile) MaxRate() float64 { return p.maxRate }
