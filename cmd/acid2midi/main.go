package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"midifarm/player"
	"midifarm/score"
)

const tempo = 130

// acid2midi [text...]
//
// Turns text into an acid pattern across four farm ports. Without
// arguments it plays a built-in demo text.
func main() {
	text := score.DefaultAcidText
	if len(os.Args) > 1 {
		text = strings.Join(os.Args[1:], " ")
	}

	instruments := score.AcidInstruments()
	p := player.New(tempo)
	closeVoices, err := p.OpenVoices(instruments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "acid2midi: %v\n", err)
		os.Exit(1)
	}
	defer closeVoices()

	player.RouteVoices(instruments, os.Stderr)

	q, chars := score.EncodeAcid(text)
	fmt.Printf("Encoding and playing ACID pattern (%d characters) at BPM %d...\n\n", len(text), tempo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := p.Play(ctx, q, chars); err != nil {
		fmt.Fprintf(os.Stderr, "acid2midi: %v\n", err)
		os.Exit(1)
	}
}
