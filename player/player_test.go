package player

import (
	"bytes"
	"context"
	"strings"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"

	"midifarm/score"
)

// recorder captures sent messages for one voice
type recorder struct {
	msgs []gomidi.Message
}

func (r *recorder) send(msg gomidi.Message) error {
	r.msgs = append(r.msgs, msg)
	return nil
}

// fastPlayer runs ticks at a few microseconds so tests finish instantly
func fastPlayer() *Player {
	p := New(1_000_000)
	p.SetEcho(&bytes.Buffer{})
	return p
}

func TestPlaySendsEventsOnChannel(t *testing.T) {
	p := fastPlayer()
	rec := &recorder{}
	p.AddVoice(score.TB303, 3, rec.send)

	q := &score.Queue{}
	q.Add(score.Event{Tick: 0, Instrument: score.TB303, Type: score.NoteOn, Key: 48, Value: 100})
	q.Add(score.Event{Tick: 2, Instrument: score.TB303, Type: score.NoteOff, Key: 48})
	q.Add(score.Event{Tick: 1, Instrument: score.TB303, Type: score.CC, Key: 71, Value: 80})

	if err := p.Play(context.Background(), q, nil); err != nil {
		t.Fatalf("Play: %v", err)
	}

	if len(rec.msgs) != 3 {
		t.Fatalf("sent %d messages, want 3", len(rec.msgs))
	}

	var ch, key, vel uint8
	if !rec.msgs[0].GetNoteOn(&ch, &key, &vel) || ch != 2 || key != 48 || vel != 100 {
		t.Errorf("first message = % X, want note-on ch3 48/100", []byte(rec.msgs[0]))
	}
	var ctrl, val uint8
	if !rec.msgs[1].GetControlChange(&ch, &ctrl, &val) || ctrl != 71 || val != 80 {
		t.Errorf("second message = % X, want cc71=80", []byte(rec.msgs[1]))
	}
	if !rec.msgs[2].GetNoteOff(&ch, &key, &vel) || key != 48 {
		t.Errorf("third message = % X, want note-off 48", []byte(rec.msgs[2]))
	}
}

func TestPlayFlushesHangingNotes(t *testing.T) {
	p := fastPlayer()
	rec := &recorder{}
	p.AddVoice(score.PadSynth, 4, rec.send)

	// Note-on with no matching note-off in the queue.
	q := &score.Queue{}
	q.Add(score.Event{Tick: 0, Instrument: score.PadSynth, Type: score.NoteOn, Key: 60, Value: 90})

	if err := p.Play(context.Background(), q, nil); err != nil {
		t.Fatalf("Play: %v", err)
	}

	last := rec.msgs[len(rec.msgs)-1]
	var ch, key, vel uint8
	if !last.GetNoteOff(&ch, &key, &vel) || ch != 3 || key != 60 {
		t.Errorf("last message = % X, want flush note-off ch4 60", []byte(last))
	}
}

func TestPlayCancelledContextStillFlushes(t *testing.T) {
	p := New(60) // slow clock so cancellation wins the race
	p.SetEcho(&bytes.Buffer{})
	rec := &recorder{}
	p.AddVoice(score.TB303, 1, rec.send)

	q := &score.Queue{}
	q.Add(score.Event{Tick: 0, Instrument: score.TB303, Type: score.NoteOn, Key: 50, Value: 100})
	q.Add(score.Event{Tick: 1000, Instrument: score.TB303, Type: score.NoteOff, Key: 50})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Play(ctx, q, nil); err != nil {
		t.Fatalf("Play: %v", err)
	}

	var ch, key, vel uint8
	last := rec.msgs[len(rec.msgs)-1]
	if !last.GetNoteOff(&ch, &key, &vel) || key != 50 {
		t.Errorf("last message = % X, want flush note-off 50", []byte(last))
	}
}

func TestPlayEchoesText(t *testing.T) {
	p := New(1_000_000)
	var out bytes.Buffer
	p.SetEcho(&out)

	text := "hey"
	q, chars := score.EncodeAcid(text)
	// Strip the instruments so nothing needs a voice.
	if err := p.Play(context.Background(), q, chars); err != nil {
		t.Fatalf("Play: %v", err)
	}

	if !strings.HasPrefix(out.String(), text) {
		t.Errorf("echo = %q, want prefix %q", out.String(), text)
	}
	if !strings.Contains(out.String(), "All notes off.") {
		t.Errorf("echo missing shutdown line: %q", out.String())
	}
}

func TestPlayUnknownInstrumentIsIgnored(t *testing.T) {
	p := fastPlayer()

	q := &score.Queue{}
	q.Add(score.Event{Tick: 0, Instrument: "NoSuchVoice", Type: score.NoteOn, Key: 48, Value: 100})

	// Must not panic.
	if err := p.Play(context.Background(), q, nil); err != nil {
		t.Fatalf("Play: %v", err)
	}
}

func TestTickDuration(t *testing.T) {
	p := New(130)
	want := float64(60.0 / 130.0 / 4.0)
	got := p.TickDuration().Seconds()
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("TickDuration = %v, want %vs", p.TickDuration(), want)
	}
}
