package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"midifarm/player"
	"midifarm/score"
)

const tempo = 135

// acidtrack
//
// Plays a fixed 32-bar acid techno arrangement across all eight farm
// ports. The pattern is generated fresh each run but from a fixed seed,
// so every run sounds the same.
func main() {
	instruments := score.TrackInstruments()
	p := player.New(tempo)
	closeVoices, err := p.OpenVoices(instruments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "acidtrack: %v\n", err)
		os.Exit(1)
	}
	defer closeVoices()

	player.RouteVoices(instruments, os.Stderr)

	q := score.AcidTrack()
	fmt.Printf("Playing %d-bar acid track at BPM %d...\n\n", score.TrackBars, tempo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := p.Play(ctx, q, nil); err != nil {
		fmt.Fprintf(os.Stderr, "acidtrack: %v\n", err)
		os.Exit(1)
	}
}
