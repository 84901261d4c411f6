// Implements the BedPool, the single contended resource of the ward model.
// Patients who find no free bed join a FIFO wait queue and are admitted
// strictly in arrival order as beds free up.

package sim

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultWaitQueueBound is the wait-queue sanity bound used when the
// configuration does not set one.
const DefaultWaitQueueBound = 1000

// RequestOutcome is the result of asking the BedPool for a bed.
type RequestOutcome int

const (
	Granted RequestOutcome = iota
	Queued
)

func (o RequestOutcome) String() string {
	if o == Granted {
		return "granted"
	}
	return "queued"
}

// BedPool is a finite pool of ward beds with a FIFO wait queue.
// Invariant: len(occupied) <= capacity at all times. A bed counts as occupied
// from the instant it is granted, so a grant at time t can never race an
// arrival at the same timestamp.
type BedPool struct {
	capacity int
	occupied map[int]struct{} // patient ID → occupying
	waiting  []*Patient       // FIFO, arrival order

	// waitBound is the sanity bound beyond which the pool reports a
	// capacity-exhausted diagnostic. Not a hard abort.
	waitBound int
	exhausted bool
}

// NewBedPool creates a pool with the given capacity and wait-queue sanity
// bound. bound <= 0 selects DefaultWaitQueueBound.
func NewBedPool(capacity, bound int) *BedPool {
	if bound <= 0 {
		bound = DefaultWaitQueueBound
	}
	return &BedPool{
		capacity:  capacity,
		occupied:  make(map[int]struct{}),
		waiting:   make([]*Patient, 0),
		waitBound: bound,
	}
}

// Request asks for a bed for p at the given instant. If a bed is free it is
// seized immediately and Granted is returned; otherwise the patient joins the
// back of the wait queue.
func (bp *BedPool) Request(p *Patient, at float64) RequestOutcome {
	if len(bp.occupied) < bp.capacity {
		bp.occupied[p.ID] = struct{}{}
		return Granted
	}
	bp.waiting = append(bp.waiting, p)
	if len(bp.waiting) > bp.waitBound && !bp.exhausted {
		bp.exhausted = true
		logrus.Warnf("wait queue exceeded sanity bound %d at t=%.3f; scenario is under-provisioned", bp.waitBound, at)
	}
	return Queued
}

// Release frees the bed held by patient id. If the wait queue is non-empty
// the head patient seizes the freed bed at the same instant and is returned
// so the caller can schedule its admission; otherwise Release returns nil.
func (bp *BedPool) Release(id int, at float64) *Patient {
	if _, ok := bp.occupied[id]; !ok {
		// A release for a patient not in a bed is a bug in the event loop.
		panic(fmt.Sprintf("BedPool.Release: patient %d does not hold a bed at t=%.3f", id, at))
	}
	delete(bp.occupied, id)

	if len(bp.waiting) == 0 {
		return nil
	}
	next := bp.waiting[0]
	bp.waiting = bp.waiting[1:]
	bp.occupied[next.ID] = struct{}{}
	return next
}

// Occupied returns the number of occupied beds.
func (bp *BedPool) Occupied() int {
	return len(bp.occupied)
}

// WaitingLen returns the number of patients queued for a bed.
func (bp *BedPool) WaitingLen() int {
	return len(bp.waiting)
}

// Capacity returns the configured bed count.
func (bp *BedPool) Capacity() int {
	return bp.capacity
}

// Exhausted reports whether the wait queue ever exceeded the sanity bound.
func (bp *BedPool) Exhausted() bool {
	return bp.exhausted
}

func (bp *BedPool) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("beds %d/%d waiting [", len(bp.occupied), bp.capacity))
	for i, p := range bp.waiting {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprint(p.ID))
	}
	sb.WriteString("]")
	return sb.String()
}
