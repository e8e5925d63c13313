package midiport

import (
	"bytes"
	"errors"
	"testing"
)

func TestPassThroughIdentity(t *testing.T) {
	var got [][]byte
	forward := passThrough("virtual-1", func(msg []byte) error {
		cp := make([]byte, len(msg))
		copy(cp, msg)
		got = append(got, cp)
		return nil
	})

	sent := [][]byte{
		{0x90, 60, 100},       // note on
		{0x80, 60, 0},         // note off
		{0xB0, 71, 127},       // cc
		{0xF0, 0x7D, 1, 0xF7}, // sysex
	}
	for _, msg := range sent {
		forward(msg, 0)
	}

	if len(got) != len(sent) {
		t.Fatalf("forwarded %d messages, want %d", len(got), len(sent))
	}
	for i := range sent {
		if !bytes.Equal(got[i], sent[i]) {
			t.Errorf("message %d altered: got % X, want % X", i, got[i], sent[i])
		}
	}
}

func TestPassThroughSurvivesSendErrors(t *testing.T) {
	calls := 0
	forward := passThrough("virtual-1", func(msg []byte) error {
		calls++
		return errors.New("output gone")
	})

	// Must not panic, must keep invoking send for later events.
	forward([]byte{0x90, 60, 100}, 0)
	forward([]byte{0x80, 60, 0}, 10)

	if calls != 2 {
		t.Errorf("send called %d times, want 2", calls)
	}
}
