package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardsim/wardsim/sim"
	"github.com/wardsim/wardsim/sim/workload"
)

// fixtureResult is a hand-built two-bed run: three patients, one of whom
// queues for a day before the first discharge frees a bed.
func fixtureResult() *sim.RunResult {
	cfg := sim.DefaultRunConfig()
	cfg.Beds = 2
	cfg.HorizonDays = 10
	return &sim.RunResult{
		Config: cfg,
		Events: []sim.EventRecord{
			{Time: 0, Kind: sim.KindArrival, PatientID: 0},
			{Time: 0, Kind: sim.KindAdmission, PatientID: 0},
			{Time: 0.5, Kind: sim.KindArrival, PatientID: 1},
			{Time: 0.5, Kind: sim.KindAdmission, PatientID: 1},
			{Time: 1, Kind: sim.KindArrival, PatientID: 2},
			{Time: 2, Kind: sim.KindDischarge, PatientID: 0},
			{Time: 2, Kind: sim.KindAdmission, PatientID: 2},
			{Time: 4, Kind: sim.KindDischarge, PatientID: 1},
			{Time: 5, Kind: sim.KindDischarge, PatientID: 2},
		},
		Patients: []sim.PatientRecord{
			{ID: 0, ArrivalTime: 0, AdmissionTime: 0, DischargeTime: 2, WaitDays: 0, StayDays: 2, Status: sim.StatusDischarged},
			{ID: 1, ArrivalTime: 0.5, IsLongStayer: true, AdmissionTime: 0.5, DischargeTime: 4, WaitDays: 0, StayDays: 3.5, Status: sim.StatusDischarged},
			{ID: 2, ArrivalTime: 1, AdmissionTime: 2, DischargeTime: 5, WaitDays: 1, StayDays: 3, Status: sim.StatusDischarged},
		},
		EndTime: 10,
	}
}

func TestOccupancyCurve_Replay(t *testing.T) {
	curve := OccupancyCurve(fixtureResult())

	// Final state: ward empty, nobody waiting.
	last := curve[len(curve)-1]
	assert.Equal(t, 0, last.Occupied)
	assert.Equal(t, 0, last.Waiting)

	peak := 0
	for _, pt := range curve {
		assert.GreaterOrEqual(t, pt.Occupied, 0)
		assert.GreaterOrEqual(t, pt.Waiting, 0)
		if pt.Occupied > peak {
			peak = pt.Occupied
		}
	}
	assert.Equal(t, 2, peak)

	// The queued patient is visible between its arrival and admission.
	var sawWaiting bool
	for _, pt := range curve {
		if pt.Time >= 1 && pt.Time < 2 && pt.Waiting == 1 {
			sawWaiting = true
		}
	}
	assert.True(t, sawWaiting)
}

func TestSummarize_Fixture(t *testing.T) {
	s := Summarize(fixtureResult())

	assert.Equal(t, 3, s.Arrivals)
	assert.Equal(t, 3, s.Admitted)
	assert.Equal(t, 3, s.Discharged)
	assert.Equal(t, 0, s.StillOccupying)
	assert.Equal(t, 0, s.StillWaiting)

	assert.InDelta(t, 1.0/3, s.MeanWaitDays, 1e-9)
	assert.InDelta(t, 1.0, s.P95WaitDays, 1e-9)
	assert.InDelta(t, 1.0, s.MaxWaitDays, 1e-9)

	// Occupied-bed integral is 8.5 bed-days over a 10-day window.
	assert.InDelta(t, 0.85, s.MeanOccupancy, 1e-9)
	assert.Equal(t, 2, s.PeakOccupancy)
	assert.InDelta(t, 0.425, s.Utilization, 1e-9)

	assert.Equal(t, 2, s.ShortStay.Arrivals)
	assert.Equal(t, 2, s.ShortStay.Admitted)
	assert.InDelta(t, 0.5, s.ShortStay.MeanWaitDays, 1e-9)
	assert.InDelta(t, 2.5, s.ShortStay.MeanStayDays, 1e-9)
	assert.Equal(t, 1, s.LongStay.Arrivals)
	assert.InDelta(t, 3.5, s.LongStay.MeanStayDays, 1e-9)
}

func TestSummarize_WarmupExcluded(t *testing.T) {
	r := fixtureResult()
	r.Config.WarmupDays = 0.75

	s := Summarize(r)

	// Only the patient arriving at t=1 is inside the measurement window.
	assert.Equal(t, 1, s.Arrivals)
	assert.Equal(t, 1, s.Admitted)
	assert.InDelta(t, 1.0, s.MeanWaitDays, 1e-9)

	// Occupancy integrates over [0.75, 10] only: 7.5 bed-days / 9.25 days.
	assert.InDelta(t, 7.5/9.25, s.MeanOccupancy, 1e-9)
}

func TestSummarize_LittlesLaw(t *testing.T) {
	// Arrival rate 1/day into 10 beds with ~5-day mean stays: steady-state
	// occupancy sits near rate × mean effective stay, well under capacity.
	cfg := sim.DefaultRunConfig()
	cfg.Seed = 42
	cfg.Beds = 10
	cfg.HorizonDays = 600
	cfg.WarmupDays = 50
	cfg.LongStayProb = 0
	cfg.ShortStay = workload.StaySpec{Distribution: workload.DistExponential, MeanDays: 5}
	cfg.Arrival = workload.ProfileSpec{Process: workload.ProcessConstant, RatePerDay: 1}

	s, err := sim.NewSimulator(cfg)
	require.NoError(t, err)
	res, err := s.Run()
	require.NoError(t, err)

	summary := Summarize(res)
	assert.Greater(t, summary.MeanOccupancy, 4.0)
	assert.Less(t, summary.MeanOccupancy, 8.0)
	assert.LessOrEqual(t, summary.PeakOccupancy, cfg.Beds)
}
