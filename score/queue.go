package score

import "container/heap"

// Queue holds scheduled events ordered by tick. Events on the same tick
// pop in unspecified order; the player dispatches a whole tick at once.
type Queue struct {
	h eventHeap
}

// Add schedules an event
func (q *Queue) Add(e Event) {
	heap.Push(&q.h, e)
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.h)
}

// Peek returns the earliest event without removing it
func (q *Queue) Peek() (Event, bool) {
	if len(q.h) == 0 {
		return Event{}, false
	}
	return q.h[0], true
}

// Pop removes and returns the earliest event
func (q *Queue) Pop() (Event, bool) {
	if len(q.h) == 0 {
		return Event{}, false
	}
	return heap.Pop(&q.h).(Event), true
}

// MaxTick returns the largest tick in the queue (0 when empty)
func (q *Queue) MaxTick() int {
	max := 0
	for _, e := range q.h {
		if e.Tick > max {
			max = e.Tick
		}
	}
	return max
}

type eventHeap []Event

func (h eventHeap) Len() int            { return len(h) }
func (h eventHeap) Less(i, j int) bool  { return h[i].Tick < h[j].Tick }
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(Event)) }
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
