package midiport

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"

	"midifarm/debug"
)

// PortEvent is emitted when a watched port appears/disappears
type PortEvent struct {
	Type PortEventType
	Name string
}

type PortEventType int

const (
	PortAppeared PortEventType = iota
	PortDisappeared
)

// Watcher polls the driver's output ports and reports visibility changes
// for a set of watched names. The farm monitor uses it to confirm that
// each spawned client actually registered with the subsystem.
type Watcher struct {
	watched  []string
	visible  map[string]bool
	mu       sync.RWMutex
	events   chan PortEvent
	pollRate time.Duration
}

// NewWatcher creates a watcher for the given port names
func NewWatcher(names []string) *Watcher {
	w := &Watcher{
		watched:  append([]string(nil), names...),
		visible:  make(map[string]bool),
		events:   make(chan PortEvent, 16),
		pollRate: time.Second,
	}
	return w
}

// Events returns a channel of appear/disappear events
func (w *Watcher) Events() <-chan PortEvent {
	return w.events
}

// Visible returns a snapshot of which watched ports are registered
func (w *Watcher) Visible() map[string]bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	snapshot := make(map[string]bool, len(w.visible))
	for k, v := range w.visible {
		snapshot[k] = v
	}
	return snapshot
}

// Run starts the polling loop (blocking - run in goroutine)
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollRate)
	defer ticker.Stop()

	// Initial scan
	w.scan()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

// scan diffs the driver's current output ports against the last snapshot
func (w *Watcher) scan() {
	current := make(map[string]bool, len(w.watched))
	for _, port := range gomidi.GetOutPorts() {
		for _, name := range w.watched {
			// ALSA labels virtual ports with the client name prefixed
			// ("midifarm:virtual-1"), so match on substring too.
			if strings.Contains(port.String(), name) {
				current[name] = true
			}
		}
	}

	w.mu.Lock()
	var events []PortEvent
	for _, name := range w.watched {
		was := w.visible[name]
		is := current[name]
		if is && !was {
			events = append(events, PortEvent{Type: PortAppeared, Name: name})
		}
		if was && !is {
			events = append(events, PortEvent{Type: PortDisappeared, Name: name})
		}
		w.visible[name] = is
	}
	w.mu.Unlock()

	for _, e := range events {
		debug.Log("watch", "port %q event=%d", e.Name, e.Type)
		select {
		case w.events <- e:
		default:
			// Drop if nobody is draining
		}
	}
}
