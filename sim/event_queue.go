package sim

import "container/heap"

// eventEntry pairs an event with its insertion sequence number.
type eventEntry struct {
	event Event
	seq   uint64
}

// eventHeap is a min-heap of entries ordered by (timestamp, seq).
type eventHeap []eventEntry

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].event.Timestamp() != h[j].event.Timestamp() {
		return h[i].event.Timestamp() < h[j].event.Timestamp()
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(eventEntry)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// EventQueue is the time-ordered queue of pending events. Events with equal
// timestamps pop in the order they were scheduled, so a run is a pure
// function of its initial events and seeds: no map iteration, pointer values
// or scheduling races can reorder it.
type EventQueue struct {
	entries eventHeap
	nextSeq uint64
}

func NewEventQueue() *EventQueue {
	q := &EventQueue{}
	heap.Init(&q.entries)
	return q
}

// Schedule adds an event to the queue.
func (q *EventQueue) Schedule(e Event) {
	heap.Push(&q.entries, eventEntry{event: e, seq: q.nextSeq})
	q.nextSeq++
}

// PopNext removes and returns the earliest pending event, nil when empty.
func (q *EventQueue) PopNext() Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(&q.entries).(eventEntry).event
}

// Peek returns the earliest pending event without removing it, nil when
// empty.
func (q *EventQueue) Peek() Event {
	if q.Len() == 0 {
		return nil
	}
	return q.entries[0].event
}

func (q *EventQueue) Len() int { return len(q.entries) }
