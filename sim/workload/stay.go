package workload

import (
	"fmt"
	"math"
	"math/rand"
	randv2 "math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// MinStayDays is the floor applied to sampled stays before rounding: every
// admitted patient occupies a bed for at least one full day.
const MinStayDays = 1.0

// StaySampler draws a continuous length of stay in days.
type StaySampler interface {
	Sample() float64
}

// LogNormalStay samples lognormal stays parameterized by mean and standard
// deviation in days (the natural parameters analysts configure), converted
// to the distribution's mu/sigma internally.
type LogNormalStay struct {
	dist distuv.LogNormal
}

// NewLogNormalStay builds a lognormal sampler with the given mean/stdev days.
func NewLogNormalStay(meanDays, stdevDays float64, src randv2.Source) (*LogNormalStay, error) {
	if meanDays <= 0 {
		return nil, fmt.Errorf("lognormal stay: mean must be > 0, got %v", meanDays)
	}
	if stdevDays <= 0 {
		return nil, fmt.Errorf("lognormal stay: stdev must be > 0, got %v", stdevDays)
	}
	// Moment matching: sigma^2 = ln(1 + var/mean^2), mu = ln(mean) - sigma^2/2.
	sigma2 := math.Log(1 + (stdevDays*stdevDays)/(meanDays*meanDays))
	mu := math.Log(meanDays) - sigma2/2
	return &LogNormalStay{
		dist: distuv.LogNormal{Mu: mu, Sigma: math.Sqrt(sigma2), Src: src},
	}, nil
}

func (s *LogNormalStay) Sample() float64 {
	return s.dist.Rand()
}

// ExponentialStay samples exponentially-distributed stays with the given mean.
type ExponentialStay struct {
	dist distuv.Exponential
}

// NewExponentialStay builds an exponential sampler with the given mean days.
func NewExponentialStay(meanDays float64, src randv2.Source) (*ExponentialStay, error) {
	if meanDays <= 0 {
		return nil, fmt.Errorf("exponential stay: mean must be > 0, got %v", meanDays)
	}
	return &ExponentialStay{
		dist: distuv.Exponential{Rate: 1 / meanDays, Src: src},
	}, nil
}

func (s *ExponentialStay) Sample() float64 {
	return s.dist.Rand()
}

// StayModel classifies each patient as short- or long-stay and draws the
// duration from the matching distribution. Classification and duration use
// separate streams so changing one distribution's parameters does not shift
// the classification sequence.
type StayModel struct {
	longProb float64
	classRng *rand.Rand
	short    StaySampler
	long     StaySampler
}

// NewStayModel wires a classifier and the two stay distributions.
func NewStayModel(longProb float64, classRng *rand.Rand, short, long StaySampler) (*StayModel, error) {
	if longProb < 0 || longProb > 1 {
		return nil, fmt.Errorf("stay model: long-stay probability must be in [0,1], got %v", longProb)
	}
	return &StayModel{longProb: longProb, classRng: classRng, short: short, long: long}, nil
}

// Draw classifies one patient and samples its raw stay duration in days.
// Both values are fixed for the lifetime of the patient.
func (m *StayModel) Draw() (isLong bool, rawDays float64) {
	if m.classRng.Float64() < m.longProb {
		return true, m.long.Sample()
	}
	return false, m.short.Sample()
}

// RoundDischarge applies the overnight rule once, at admission time: the raw
// stay is clamped to MinStayDays, then the discharge is pushed up to the next
// whole-day boundary, which is strictly later than the admission day. It is
// pure rounding arithmetic, independent of any calendar.
func RoundDischarge(admission, rawDays float64) float64 {
	if rawDays < MinStayDays {
		rawDays = MinStayDays
	}
	d := math.Ceil(admission + rawDays)
	// Discharges happen on a later day than the admission, always.
	if earliest := math.Floor(admission) + 1; d < earliest {
		d = earliest
	}
	return d
}
