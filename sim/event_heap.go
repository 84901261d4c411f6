package sim

import "container/heap"

// scheduledEvent pairs an Event with the sequence number it received when it
// was scheduled. The sequence is the final tie-breaker, so events with equal
// (time, kind-priority) keys pop in insertion order.
type scheduledEvent struct {
	ev  Event
	seq uint64
}

// EventHeap implements a priority queue with deterministic ordering.
// Ordering: time → kind priority → insertion sequence.
type EventHeap struct {
	items   []scheduledEvent
	nextSeq uint64
}

// NewEventHeap creates a new event heap.
func NewEventHeap() *EventHeap {
	h := &EventHeap{
		items: make([]scheduledEvent, 0),
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface
func (h *EventHeap) Len() int {
	return len(h.items)
}

// Less implements heap.Interface with deterministic ordering
// Order by: time → kind priority → sequence
func (h *EventHeap) Less(i, j int) bool {
	ei, ej := h.items[i], h.items[j]

	// Primary: time (earlier first)
	if ei.ev.Time() != ej.ev.Time() {
		return ei.ev.Time() < ej.ev.Time()
	}

	// Secondary: kind priority (lower priority value = processed first)
	priI := KindPriority[ei.ev.Kind()]
	priJ := KindPriority[ej.ev.Kind()]
	if priI != priJ {
		return priI < priJ
	}

	// Tertiary: scheduling order (stable for equal keys)
	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (h *EventHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// Push implements heap.Interface
func (h *EventHeap) Push(x any) {
	h.items = append(h.items, x.(scheduledEvent))
}

// Pop implements heap.Interface
func (h *EventHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[0 : n-1]
	return item
}

// Schedule inserts an event keyed by (time, kind priority).
func (h *EventHeap) Schedule(e Event) {
	heap.Push(h, scheduledEvent{ev: e, seq: h.nextSeq})
	h.nextSeq++
}

// PopNext removes and returns the earliest event, or nil if none remain.
func (h *EventHeap) PopNext() Event {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(scheduledEvent).ev
}

// Peek returns the earliest event without removing it.
func (h *EventHeap) Peek() Event {
	if h.Len() == 0 {
		return nil
	}
	return h.items[0].ev
}
