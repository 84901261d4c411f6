// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/wardsim/wardsim/sim/workload"
)

// RunState tracks the replication lifecycle: Initialized → Running → Completed.
// Events are popped and processed only while Running.
type RunState string

const (
	Initialized RunState = "initialized"
	Running     RunState = "running"
	Completed   RunState = "completed"
)

// Simulator is the run controller for one replication. It owns the clock,
// the event queue, and the bed pool for the duration of the event loop;
// no external actor reads or mutates them mid-run.
type Simulator struct {
	Clock   float64
	Horizon float64
	State   RunState

	EventQueue *EventHeap
	Beds       *BedPool

	rng  *PartitionedRNG
	stay *workload.StayModel
	cfg  RunConfig

	patients []*Patient
	nextID   int
	events   []EventRecord

	result *RunResult
}

// NewSimulator validates cfg and wires one replication. Validation failures
// surface here, before any event is scheduled.
func NewSimulator(cfg RunConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))

	staySrc := rng.ForSubsystem(SubsystemStay)
	short, err := cfg.ShortStay.Build(staySrc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	long, err := cfg.LongStay.Build(staySrc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	stay, err := workload.NewStayModel(cfg.LongStayProb, rng.ForSubsystem(SubsystemClassification), short, long)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Simulator{
		Clock:      0,
		Horizon:    cfg.HorizonDays,
		State:      Initialized,
		EventQueue: NewEventHeap(),
		Beds:       NewBedPool(cfg.Beds, cfg.WaitQueueBound),
		rng:        rng,
		stay:       stay,
		cfg:        cfg,
		patients:   make([]*Patient, 0),
		events:     make([]EventRecord, 0),
	}, nil
}

// Run executes the replication to its horizon and freezes the result.
// It can be called once; the frozen RunResult is returned thereafter by
// Result().
func (s *Simulator) Run() (*RunResult, error) {
	if s.State != Initialized {
		return nil, fmt.Errorf("simulator already ran (state %s)", s.State)
	}

	if err := s.scheduleArrivals(); err != nil {
		// ArrivalProcessDegenerate: reported, run aborted.
		return nil, err
	}

	s.State = Running
	for s.EventQueue.Len() > 0 {
		if s.EventQueue.Peek().Time() > s.Horizon {
			break
		}
		ev := s.EventQueue.PopNext()
		s.Clock = ev.Time()
		ev.Execute(s)
	}
	s.finalize()
	logrus.Infof("[t=%08.3f] Simulation ended: %d patients, %d events", s.Clock, len(s.patients), len(s.events))

	return s.result, nil
}

// Result returns the frozen RunResult, or nil before the run completes.
func (s *Simulator) Result() *RunResult {
	return s.result
}

// scheduleArrivals pre-schedules every arrival instant up to the horizon.
// Only the arrivals stream is consumed here; the thinning process never
// interleaves with classification or stay draws.
func (s *Simulator) scheduleArrivals() error {
	if len(s.cfg.ArrivalTimes) > 0 {
		for _, t := range s.cfg.ArrivalTimes {
			if t > s.Horizon {
				break
			}
			s.EventQueue.Schedule(&ArrivalEvent{time: t})
		}
		return nil
	}

	profile, err := s.cfg.Arrival.Build()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	proc := workload.NewThinningProcess(profile, s.rng.ForSubsystem(SubsystemArrivals), s.cfg.MaxThinningRejects)

	t := 0.0
	for {
		t, err = proc.Next(t, s.Horizon)
		if err != nil {
			return fmt.Errorf("arrival generation failed: %w", err)
		}
		if t > s.Horizon {
			return nil
		}
		s.EventQueue.Schedule(&ArrivalEvent{time: t})
	}
}

// handleArrival creates the patient, fixing its classification and raw stay
// at creation, and asks the bed pool for a bed.
func (s *Simulator) handleArrival(t float64) {
	isLong, rawDays := s.stay.Draw()
	p := NewPatient(s.nextID, t, isLong, rawDays)
	s.nextID++
	s.patients = append(s.patients, p)
	s.record(t, KindArrival, p.ID)
	logrus.Infof("<< Arrival: patient %d at t=%.3f (long=%v raw=%.3fd)", p.ID, t, isLong, rawDays)

	if s.Beds.Request(p, t) == Granted {
		s.EventQueue.Schedule(&AdmissionEvent{time: t, Patient: p})
	}
	// Queued: nothing further until a release frees a bed.
}

// handleAdmission fixes the discharge for a patient whose bed is already
// reserved. The overnight rule is applied exactly once, here.
func (s *Simulator) handleAdmission(t float64, p *Patient) {
	p.State = StateOccupying
	p.AdmissionTime = t
	discharge := workload.RoundDischarge(t, p.RawStayDays)
	p.StayDays = discharge - t
	s.record(t, KindAdmission, p.ID)
	logrus.Infof("<< Admission: patient %d at t=%.3f, discharge at t=%.3f", p.ID, t, discharge)

	s.EventQueue.Schedule(&DischargeEvent{time: discharge, Patient: p})
}

// handleDischarge frees the bed and, if anyone is waiting, admits the head
// of the queue at the same instant.
func (s *Simulator) handleDischarge(t float64, p *Patient) {
	p.State = StateDischarged
	p.DischargeTime = t
	s.record(t, KindDischarge, p.ID)
	logrus.Infof("<< Discharge: patient %d at t=%.3f", p.ID, t)

	if next := s.Beds.Release(p.ID, t); next != nil {
		s.EventQueue.Schedule(&AdmissionEvent{time: t, Patient: next})
	}
}

func (s *Simulator) record(t float64, kind EventKind, patientID int) {
	s.events = append(s.events, EventRecord{Time: t, Kind: kind, PatientID: patientID})
}

// finalize freezes the RunResult. Every patient that arrived gets exactly one
// terminal status; nobody silently disappears.
func (s *Simulator) finalize() {
	end := s.Horizon
	records := make([]PatientRecord, 0, len(s.patients))
	for _, p := range s.patients {
		rec := PatientRecord{
			ID:            p.ID,
			ArrivalTime:   p.ArrivalTime,
			IsLongStayer:  p.IsLongStayer,
			AdmissionTime: p.AdmissionTime,
			DischargeTime: p.DischargeTime,
			WaitDays:      p.WaitDays(end),
			StayDays:      p.StayDays,
		}
		switch p.State {
		case StateDischarged:
			rec.Status = StatusDischarged
		case StateOccupying:
			rec.Status = StatusStillOccupying
		default:
			rec.Status = StatusStillWaiting
		}
		records = append(records, rec)
	}

	var warnings []string
	if s.Beds.Exhausted() {
		warnings = append(warnings, fmt.Sprintf(
			"capacity exhausted: wait queue exceeded sanity bound %d; %d patients still waiting at horizon",
			s.Beds.waitBound, s.Beds.WaitingLen()))
	}

	s.result = &RunResult{
		Config:   s.cfg,
		Events:   s.events,
		Patients: records,
		Warnings: warnings,
		EndTime:  end,
	}
	s.State = Completed
}
