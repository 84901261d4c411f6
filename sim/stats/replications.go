package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/wardsim/wardsim/sim"
)

// Interval is a replication-level mean with a Student-t confidence interval.
// With fewer than two replications the interval collapses to the mean.
type Interval struct {
	Mean   float64
	Lo     float64
	Hi     float64
	StdDev float64
	N      int
}

// NewInterval computes the conf-level (e.g. 0.95) confidence interval of the
// mean of values across independent replications.
func NewInterval(values []float64, conf float64) Interval {
	n := len(values)
	if n == 0 {
		return Interval{}
	}
	mean, std := stat.MeanStdDev(values, nil)
	if n < 2 || math.IsNaN(std) {
		return Interval{Mean: mean, Lo: mean, Hi: mean, N: n}
	}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	half := t.Quantile(1-(1-conf)/2) * std / math.Sqrt(float64(n))
	return Interval{Mean: mean, Lo: mean - half, Hi: mean + half, StdDev: std, N: n}
}

// TrialSummary aggregates an ordered sequence of independent replications.
type TrialSummary struct {
	Replications int
	Runs         []Summary

	MeanWaitDays  Interval
	P95WaitDays   Interval
	MeanOccupancy Interval
	Utilization   Interval
}

// Aggregate summarizes every replication and forms confidence intervals over
// the per-run aggregates. The results are read-only inputs.
func Aggregate(results []*sim.RunResult, conf float64) TrialSummary {
	ts := TrialSummary{
		Replications: len(results),
		Runs:         make([]Summary, 0, len(results)),
	}

	waits := make([]float64, 0, len(results))
	p95s := make([]float64, 0, len(results))
	occs := make([]float64, 0, len(results))
	utils := make([]float64, 0, len(results))
	for _, r := range results {
		s := Summarize(r)
		ts.Runs = append(ts.Runs, s)
		waits = append(waits, s.MeanWaitDays)
		p95s = append(p95s, s.P95WaitDays)
		occs = append(occs, s.MeanOccupancy)
		utils = append(utils, s.Utilization)
	}

	ts.MeanWaitDays = NewInterval(waits, conf)
	ts.P95WaitDays = NewInterval(p95s, conf)
	ts.MeanOccupancy = NewInterval(occs, conf)
	ts.Utilization = NewInterval(utils, conf)
	return ts
}
