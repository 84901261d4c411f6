package sim

// EventKind identifies the type of a simulation event.
type EventKind string

const (
	KindArrival   EventKind = "arrival"
	KindAdmission EventKind = "admission"
	KindDischarge EventKind = "discharge"
)

// KindPriority defines ordering for simultaneous events.
// Lower values are processed first: a discharge at time t frees its bed
// before any admission or new arrival at the same instant, so capacity is
// never transiently violated.
var KindPriority = map[EventKind]int{
	KindDischarge: 1,
	KindAdmission: 2,
	KindArrival:   3,
}

// Event defines the interface for all simulation events.
// Events are owned by the EventHeap until popped, then handed to the
// Simulator, which is the only entity that mutates ward state.
type Event interface {
	Time() float64
	Kind() EventKind
	Execute(*Simulator)
}

// ArrivalEvent represents a patient presenting at the ward.
// The Patient itself is created when the event fires, not when it is
// scheduled, so patient IDs follow fired order.
type ArrivalEvent struct {
	time float64
}

func (e *ArrivalEvent) Time() float64   { return e.time }
func (e *ArrivalEvent) Kind() EventKind { return KindArrival }

func (e *ArrivalEvent) Execute(s *Simulator) {
	s.handleArrival(e.time)
}

// AdmissionEvent represents a patient moving into a bed that the BedPool has
// already reserved for them.
type AdmissionEvent struct {
	time    float64
	Patient *Patient
}

func (e *AdmissionEvent) Time() float64   { return e.time }
func (e *AdmissionEvent) Kind() EventKind { return KindAdmission }

func (e *AdmissionEvent) Execute(s *Simulator) {
	s.handleAdmission(e.time, e.Patient)
}

// DischargeEvent represents a patient leaving the ward at a day boundary.
type DischargeEvent struct {
	time    float64
	Patient *Patient
}

func (e *DischargeEvent) Time() float64   { return e.time }
func (e *DischargeEvent) Kind() EventKind { return KindDischarge }

func (e *DischargeEvent) Execute(s *Simulator) {
	s.handleDischarge(e.time, e.Patient)
}
