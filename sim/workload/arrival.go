package workload

import (
	"errors"
	"math/rand"
)

// ErrArrivalDegenerate is reported when the thinning sampler rejects too many
// candidates in a row, which happens when the rate function is effectively
// zero over long stretches relative to its upper bound. The run is aborted
// rather than looping forever.
var ErrArrivalDegenerate = errors.New("arrival process degenerate: rate function near zero for too long")

// DefaultMaxRejects caps consecutive thinning rejections per accepted arrival.
const DefaultMaxRejects = 100000

// ThinningProcess samples a non-stationary Poisson process by
// acceptance-rejection (thinning) against the profile's rate bound.
// It is restartable per replication and draws only from the rng handed to it,
// which callers reserve for arrivals.
type ThinningProcess struct {
	profile    RateProfile
	rng        *rand.Rand
	maxRejects int
}

// NewThinningProcess builds an arrival process over profile drawing from rng.
// maxRejects <= 0 selects DefaultMaxRejects.
func NewThinningProcess(profile RateProfile, rng *rand.Rand, maxRejects int) *ThinningProcess {
	if maxRejects <= 0 {
		maxRejects = DefaultMaxRejects
	}
	return &ThinningProcess{profile: profile, rng: rng, maxRejects: maxRejects}
}

// Next returns the next arrival time strictly after now, or any value beyond
// limit once no further arrival falls before it.
//
// Candidates are drawn from a homogeneous Poisson process at the dominating
// rate MaxRate and accepted with probability Rate(candidate)/MaxRate, so each
// acceptance costs O(MaxRate/avgRate) candidate draws in expectation. The
// reject cap guards against rate functions that sit at zero for long
// stretches before the limit.
func (p *ThinningProcess) Next(now, limit float64) (float64, error) {
	lambdaMax := p.profile.MaxRate()
	t := now
	for rejects := 0; rejects <= p.maxRejects; rejects++ {
		t += p.rng.ExpFloat64() / lambdaMax
		if t > limit {
			return t, nil
		}
		if p.rng.Float64()*lambdaMax <= p.profile.Rate(t) {
			return t, nil
		}
	}
	return 0, ErrArrivalDegenerate
}
