// Package player drives a score.Queue out to the instrument ports on a
// fixed tick clock. One tick is a 16th note; events on the same tick go
// out together, and everything still sounding is flushed with note-offs
// when playback stops for any reason.
package player

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"

	"midifarm/debug"
	"midifarm/score"
)

// Sender delivers one MIDI message to an instrument's output port
type Sender func(gomidi.Message) error

type voice struct {
	channel uint8
	send    Sender
	active  map[uint8]bool
}

// Player plays scheduled events through registered voices
type Player struct {
	tempo  int
	voices map[string]*voice
	echo   io.Writer
}

// New creates a player at the given tempo (BPM)
func New(tempo int) *Player {
	if tempo < 1 {
		tempo = 130
	}
	return &Player{
		tempo:  tempo,
		voices: make(map[string]*voice),
		echo:   os.Stdout,
	}
}

// SetEcho redirects the per-character text echo (default stdout)
func (p *Player) SetEcho(w io.Writer) {
	p.echo = w
}

// AddVoice registers an instrument's channel and output
func (p *Player) AddVoice(name string, channel uint8, send Sender) {
	p.voices[name] = &voice{
		channel: channel,
		send:    send,
		active:  make(map[uint8]bool),
	}
}

// TickDuration returns the wall-clock length of one tick
func (p *Player) TickDuration() time.Duration {
	return time.Minute / time.Duration(p.tempo) / score.TicksPerBeat
}

// Play drains the queue on the tick clock, echoing source characters as
// their ticks pass. Blocks until the queue is played out or the context
// is cancelled; either way all sounding notes are released.
func (p *Player) Play(ctx context.Context, q *score.Queue, chars []score.CharTick) error {
	defer p.flush()

	maxTick := q.MaxTick()
	for _, c := range chars {
		if c.Tick > maxTick {
			maxTick = c.Tick
		}
	}

	ticker := time.NewTicker(p.TickDuration())
	defer ticker.Stop()

	charPtr := 0
	for tick := 0; tick <= maxTick+1; tick++ {
		for charPtr < len(chars) && chars[charPtr].Tick <= tick {
			fmt.Fprintf(p.echo, "%c", chars[charPtr].Ch)
			charPtr++
		}

		for {
			e, ok := q.Peek()
			if !ok || e.Tick > tick {
				break
			}
			q.Pop()
			p.dispatch(e)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func (p *Player) dispatch(e score.Event) {
	v, ok := p.voices[e.Instrument]
	if !ok {
		return
	}
	ch := v.channel - 1

	var err error
	switch e.Type {
	case score.NoteOn:
		err = v.send(gomidi.NoteOn(ch, e.Key, e.Value))
		v.active[e.Key] = true
	case score.NoteOff:
		err = v.send(gomidi.NoteOff(ch, e.Key))
		delete(v.active, e.Key)
	case score.CC:
		err = v.send(gomidi.ControlChange(ch, e.Key, e.Value))
	}
	if err != nil {
		debug.Log("player", "%s: send failed: %v", e.Instrument, err)
	}
}

// flush releases every note still sounding
func (p *Player) flush() {
	for name, v := range p.voices {
		for note := range v.active {
			if err := v.send(gomidi.NoteOff(v.channel-1, note)); err != nil {
				debug.Log("player", "%s: flush note %d: %v", name, note, err)
			}
		}
		v.active = make(map[uint8]bool)
	}
	fmt.Fprintln(p.echo, "\nAll notes off.")
}
