// Defines the Patient struct that models an individual patient in the
// simulation. Tracks arrival, classification, sampled stay, and the
// admission/discharge timestamps filled in as events fire.

package sim

// PatientState tracks where a patient is in the ward pathway.
// A patient is in exactly one state at any simulated instant.
type PatientState string

const (
	StateWaiting    PatientState = "waiting"
	StateOccupying  PatientState = "occupying"
	StateDischarged PatientState = "discharged"
)

// Patient is one simulated patient. IsLongStayer and RawStayDays are drawn
// once when the patient is created and never re-sampled. AdmissionTime and
// DischargeTime stay negative until the corresponding event fires.
type Patient struct {
	ID          int
	ArrivalTime float64

	IsLongStayer bool
	// RawStayDays is the sampled continuous stay duration before the
	// overnight rounding rule is applied.
	RawStayDays float64

	// StayDays is the effective stay (DischargeTime - AdmissionTime) fixed
	// at admission time by the overnight rule.
	StayDays      float64
	AdmissionTime float64
	DischargeTime float64

	State PatientState
}

// NewPatient creates a patient at its arrival instant, in the waiting state.
func NewPatient(id int, arrival float64, isLong bool, rawStayDays float64) *Patient {
	return &Patient{
		ID:            id,
		ArrivalTime:   arrival,
		IsLongStayer:  isLong,
		RawStayDays:   rawStayDays,
		AdmissionTime: -1,
		DischargeTime: -1,
		State:         StateWaiting,
	}
}

// WaitDays returns the time spent waiting for a bed. For patients never
// admitted it returns the censored wait up to `until`.
func (p *Patient) WaitDays(until float64) float64 {
	if p.AdmissionTime >= 0 {
		return p.AdmissionTime - p.ArrivalTime
	}
	return until - p.ArrivalTime
}
