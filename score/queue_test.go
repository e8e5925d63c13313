package score

import (
	"math/rand"
	"testing"
)

func TestQueuePopsInTickOrder(t *testing.T) {
	q := &Queue{}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		q.Add(Event{Tick: rng.Intn(100), Instrument: TB303, Type: NoteOn, Key: 48, Value: 100})
	}

	last := -1
	for q.Len() > 0 {
		e, ok := q.Pop()
		if !ok {
			t.Fatal("Pop reported empty while Len > 0")
		}
		if e.Tick < last {
			t.Fatalf("tick order violated: %d after %d", e.Tick, last)
		}
		last = e.Tick
	}
}

func TestQueuePeekDoesNotRemove(t *testing.T) {
	q := &Queue{}
	q.Add(Event{Tick: 7, Instrument: BP909, Type: NoteOn, Key: 48, Value: 100})
	q.Add(Event{Tick: 3, Instrument: TB303, Type: NoteOn, Key: 50, Value: 90})

	e, ok := q.Peek()
	if !ok || e.Tick != 3 {
		t.Fatalf("Peek = %+v, %v; want tick 3", e, ok)
	}
	if q.Len() != 2 {
		t.Errorf("Peek changed length to %d", q.Len())
	}
}

func TestQueueEmpty(t *testing.T) {
	q := &Queue{}
	if _, ok := q.Peek(); ok {
		t.Error("Peek on empty queue returned ok")
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue returned ok")
	}
	if q.MaxTick() != 0 {
		t.Errorf("MaxTick on empty queue = %d", q.MaxTick())
	}
}

func TestQueueMaxTick(t *testing.T) {
	q := &Queue{}
	for _, tick := range []int{4, 12, 9} {
		q.Add(Event{Tick: tick, Instrument: TB303, Type: NoteOn, Key: 48, Value: 100})
	}
	if got := q.MaxTick(); got != 12 {
		t.Errorf("MaxTick = %d, want 12", got)
	}
}
