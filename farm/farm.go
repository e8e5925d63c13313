// Package farm launches and tracks the virtual port spawner processes.
// Each port is a fully independent OS process; the farm only starts
// them, watches for exits, and tears them down on shutdown. There is no
// coordination between siblings.
package farm

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"midifarm/debug"
	"midifarm/midiport"
)

type ChildState int

const (
	StateStarting ChildState = iota
	StateRunning
	StateExited
	StateFailed
)

func (s ChildState) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Event is emitted when a child changes state
type Event struct {
	Number int
	Name   string
	State  ChildState
	Err    error
}

// ChildInfo is a snapshot of one spawner process
type ChildInfo struct {
	Number int
	Name   string
	PID    int
	State  ChildState
	Err    error
}

type child struct {
	number int
	name   string
	cmd    *exec.Cmd
	pid    int
	state  ChildState
	err    error
	done   chan struct{}
}

// Farm runs one spawner process per port index 1..N
type Farm struct {
	spawner  string
	children []*child
	events   chan Event
	mu       sync.RWMutex
}

// New creates a farm of n ports driven by the spawner binary at path
func New(n int, spawnerPath string) *Farm {
	f := &Farm{
		spawner: spawnerPath,
		events:  make(chan Event, 16),
	}
	for i := 1; i <= n; i++ {
		f.children = append(f.children, &child{
			number: i,
			name:   midiport.PortName(i),
			state:  StateStarting,
			done:   make(chan struct{}),
		})
	}
	return f
}

// Events returns a channel of child state changes
func (f *Farm) Events() <-chan Event {
	return f.events
}

// Names returns the client names the farm exposes, in port order
func (f *Farm) Names() []string {
	names := make([]string, len(f.children))
	for i, c := range f.children {
		names[i] = c.name
	}
	return names
}

// Children returns a snapshot of all spawner processes
func (f *Farm) Children() []ChildInfo {
	f.mu.RLock()
	defer f.mu.RUnlock()
	infos := make([]ChildInfo, len(f.children))
	for i, c := range f.children {
		infos[i] = ChildInfo{
			Number: c.number,
			Name:   c.name,
			PID:    c.pid,
			State:  c.state,
			Err:    c.err,
		}
	}
	return infos
}

// Start launches every spawner process. A child that fails to start is
// reported but does not stop the rest of the farm.
func (f *Farm) Start() error {
	var firstErr error
	for _, c := range f.children {
		if err := f.launch(c); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *Farm) launch(c *child) error {
	cmd := exec.Command(f.spawner, strconv.Itoa(c.number))
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		f.setState(c, StateFailed, fmt.Errorf("start %s: %w", c.name, err))
		close(c.done)
		return err
	}

	f.mu.Lock()
	c.cmd = cmd
	c.pid = cmd.Process.Pid
	f.mu.Unlock()
	f.setState(c, StateRunning, nil)
	debug.Log("farm", "spawned %s pid=%d", c.name, c.pid)

	go func() {
		err := cmd.Wait()
		if err != nil {
			f.setState(c, StateFailed, err)
		} else {
			f.setState(c, StateExited, nil)
		}
		close(c.done)
	}()
	return nil
}

func (f *Farm) setState(c *child, s ChildState, err error) {
	f.mu.Lock()
	c.state = s
	c.err = err
	f.mu.Unlock()

	select {
	case f.events <- Event{Number: c.number, Name: c.name, State: s, Err: err}:
	default:
		// Drop if nobody is draining
	}
}

// How long Stop waits for a child to exit before killing it.
const stopGrace = 2 * time.Second

// Stop interrupts every running child and waits for it to go away
func (f *Farm) Stop() {
	f.mu.RLock()
	children := append([]*child(nil), f.children...)
	f.mu.RUnlock()

	for _, c := range children {
		f.mu.RLock()
		cmd := c.cmd
		running := c.state == StateRunning
		f.mu.RUnlock()
		if !running || cmd == nil || cmd.Process == nil {
			continue
		}
		cmd.Process.Signal(os.Interrupt)
	}

	for _, c := range children {
		f.mu.RLock()
		cmd := c.cmd
		f.mu.RUnlock()
		if cmd == nil {
			continue // never started
		}
		select {
		case <-c.done:
		case <-time.After(stopGrace):
			if cmd.Process != nil {
				debug.Log("farm", "killing unresponsive %s", c.name)
				cmd.Process.Kill()
			}
		}
	}
}

// SpawnerPath resolves the spawner binary: an explicit configured path
// wins, then a "spawner" next to the running executable, then $PATH.
func SpawnerPath(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	if self, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(self), "spawner")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath("spawner"); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("spawner binary not found (set farm.spawnerPath in config)")
}
