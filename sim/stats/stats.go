// Package stats computes occupancy, delay, and utilization summaries from
// RunResults. Everything here is a pure function over frozen results; the
// inputs are read-only and never mutated.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/wardsim/wardsim/sim"
)

// OccupancyPoint is one step of the instantaneous ward state, valid from
// Time until the next point's Time.
type OccupancyPoint struct {
	Time     float64
	Occupied int
	Waiting  int
}

// OccupancyCurve replays the event log into a step function of occupied beds
// and queued patients over time. The log is complete, so replay is exact.
func OccupancyCurve(r *sim.RunResult) []OccupancyPoint {
	curve := make([]OccupancyPoint, 0, len(r.Events)+1)
	occupied, waiting := 0, 0
	curve = append(curve, OccupancyPoint{Time: 0})
	for _, ev := range r.Events {
		switch ev.Kind {
		case sim.KindArrival:
			waiting++
		case sim.KindAdmission:
			waiting--
			occupied++
		case sim.KindDischarge:
			occupied--
		}
		curve = append(curve, OccupancyPoint{Time: ev.Time, Occupied: occupied, Waiting: waiting})
	}
	return curve
}

// CohortSummary describes one stay cohort (short- or long-stayers).
type CohortSummary struct {
	Arrivals     int
	Admitted     int
	MeanWaitDays float64
	MeanStayDays float64
}

// Summary holds the per-replication aggregates. Waits and stays cover
// patients arriving after the warm-up window; occupancy and utilization are
// integrated from warm-up to the end of the run.
type Summary struct {
	Arrivals       int
	Admitted       int
	Discharged     int
	StillOccupying int
	StillWaiting   int

	MeanWaitDays float64
	P95WaitDays  float64
	MaxWaitDays  float64

	MeanOccupancy float64
	PeakOccupancy int
	// Utilization is occupied-bed-time over total-bed-time.
	Utilization float64

	ShortStay CohortSummary
	LongStay  CohortSummary

	Warnings []string
}

// Summarize computes the aggregates for one replication, excluding the
// configured warm-up window from the statistics (the event log itself is
// untouched).
func Summarize(r *sim.RunResult) Summary {
	warmup := r.Config.WarmupDays
	s := Summary{Warnings: r.Warnings}

	var waits []float64
	for _, p := range r.Patients {
		if p.ArrivalTime < warmup {
			continue
		}
		s.Arrivals++
		cohort := &s.ShortStay
		if p.IsLongStayer {
			cohort = &s.LongStay
		}
		cohort.Arrivals++

		switch p.Status {
		case sim.StatusDischarged:
			s.Discharged++
		case sim.StatusStillOccupying:
			s.StillOccupying++
		case sim.StatusStillWaiting:
			s.StillWaiting++
		}

		if p.AdmissionTime >= 0 {
			s.Admitted++
			waits = append(waits, p.WaitDays)
			cohort.Admitted++
			cohort.MeanWaitDays += p.WaitDays
			cohort.MeanStayDays += p.StayDays
		}
	}

	for _, cohort := range []*CohortSummary{&s.ShortStay, &s.LongStay} {
		if cohort.Admitted > 0 {
			cohort.MeanWaitDays /= float64(cohort.Admitted)
			cohort.MeanStayDays /= float64(cohort.Admitted)
		}
	}

	if len(waits) > 0 {
		s.MeanWaitDays = stat.Mean(waits, nil)
		sort.Float64s(waits)
		s.P95WaitDays = stat.Quantile(0.95, stat.Empirical, waits, nil)
		s.MaxWaitDays = waits[len(waits)-1]
	}

	s.MeanOccupancy, s.PeakOccupancy = integrateOccupancy(r, warmup)
	window := r.EndTime - warmup
	if window > 0 && r.Config.Beds > 0 {
		s.Utilization = s.MeanOccupancy / float64(r.Config.Beds)
	}
	return s
}

// integrateOccupancy returns the time-weighted mean and the peak of occupied
// beds over [warmup, EndTime].
func integrateOccupancy(r *sim.RunResult, warmup float64) (mean float64, peak int) {
	end := r.EndTime
	window := end - warmup
	if window <= 0 {
		return 0, 0
	}

	curve := OccupancyCurve(r)
	area := 0.0
	for i, pt := range curve {
		from := pt.Time
		to := end
		if i+1 < len(curve) {
			to = curve[i+1].Time
		}
		if to <= warmup || from >= end {
			continue
		}
		if from < warmup {
			from = warmup
		}
		if to > end {
			to = end
		}
		area += float64(pt.Occupied) * (to - from)
		if pt.Occupied > peak {
			peak = pt.Occupied
		}
	}
	return area / window, peak
}
