package sim

// EventRecord is one fired event in the replayable log. The log is complete
// and time-ordered: replaying it reconstructs bed occupancy at any instant.
type EventRecord struct {
	Time      float64   `json:"time"`
	Kind      EventKind `json:"event"`
	PatientID int       `json:"patient_id"`
}

// PatientStatus is the terminal status every patient ends the run with.
type PatientStatus string

const (
	// StatusDischarged: admitted and discharged before the horizon.
	StatusDischarged PatientStatus = "discharged"
	// StatusStillOccupying: admitted, still in a bed at horizon end.
	StatusStillOccupying PatientStatus = "still_occupying"
	// StatusStillWaiting: never admitted, still queued at horizon end.
	StatusStillWaiting PatientStatus = "still_waiting"
)

// PatientRecord is the per-patient summary derived when the run completes.
// AdmissionTime and DischargeTime are negative when the corresponding event
// never fired.
type PatientRecord struct {
	ID            int           `json:"id"`
	ArrivalTime   float64       `json:"arrival_time"`
	IsLongStayer  bool          `json:"is_long_stayer"`
	AdmissionTime float64       `json:"admission_time"`
	DischargeTime float64       `json:"discharge_time"`
	WaitDays      float64       `json:"wait_days"`
	StayDays      float64       `json:"stay_days"`
	Status        PatientStatus `json:"status"`
}

// RunResult is the frozen output of one replication: the append-only event
// log plus derived per-patient records. It is never mutated after the run
// transitions to Completed.
type RunResult struct {
	Config   RunConfig       `json:"config"`
	Events   []EventRecord   `json:"events"`
	Patients []PatientRecord `json:"patients"`
	// Warnings carries diagnostic conditions (e.g. wait queue past its
	// sanity bound) that the analyst should see; they are not errors.
	Warnings []string `json:"warnings,omitempty"`
	// EndTime is the simulated time at which the run completed.
	EndTime float64 `json:"end_time"`
}
