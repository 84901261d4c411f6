package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPatient(id int) *Patient {
	return NewPatient(id, 0, false, 1)
}

func TestBedPool_GrantUntilCapacity(t *testing.T) {
	bp := NewBedPool(2, 0)

	assert.Equal(t, Granted, bp.Request(newTestPatient(1), 0))
	assert.Equal(t, Granted, bp.Request(newTestPatient(2), 0))
	assert.Equal(t, Queued, bp.Request(newTestPatient(3), 0))

	assert.Equal(t, 2, bp.Occupied())
	assert.Equal(t, 1, bp.WaitingLen())
}

func TestBedPool_ReleaseAdmitsQueueHead(t *testing.T) {
	bp := NewBedPool(1, 0)

	first := newTestPatient(1)
	second := newTestPatient(2)
	third := newTestPatient(3)
	require.Equal(t, Granted, bp.Request(first, 0))
	require.Equal(t, Queued, bp.Request(second, 0.5))
	require.Equal(t, Queued, bp.Request(third, 0.7))

	next := bp.Release(first.ID, 2)
	require.NotNil(t, next)
	assert.Equal(t, second.ID, next.ID, "head of the queue must be admitted first")
	assert.Equal(t, 1, bp.Occupied(), "freed bed is seized at the same instant")
	assert.Equal(t, 1, bp.WaitingLen())

	next = bp.Release(second.ID, 3)
	require.NotNil(t, next)
	assert.Equal(t, third.ID, next.ID)

	assert.Nil(t, bp.Release(third.ID, 4), "no waiter left")
	assert.Equal(t, 0, bp.Occupied())
}

func TestBedPool_ReleaseUnknownPanics(t *testing.T) {
	bp := NewBedPool(1, 0)
	assert.Panics(t, func() { bp.Release(99, 1) })
}

func TestBedPool_ExhaustionDiagnostic(t *testing.T) {
	bp := NewBedPool(1, 2)

	require.Equal(t, Granted, bp.Request(newTestPatient(0), 0))
	for i := 1; i <= 2; i++ {
		bp.Request(newTestPatient(i), 0)
	}
	assert.False(t, bp.Exhausted(), "at the bound is still fine")

	bp.Request(newTestPatient(3), 0)
	assert.True(t, bp.Exhausted(), "past the bound raises the diagnostic")

	// Diagnostic only: requests keep queueing.
	assert.Equal(t, Queued, bp.Request(newTestPatient(4), 0))
	assert.Equal(t, 4, bp.WaitingLen())
}

func TestBedPool_DefaultBound(t *testing.T) {
	bp := NewBedPool(1, 0)
	assert.Equal(t, DefaultWaitQueueBound, bp.waitBound)
}
