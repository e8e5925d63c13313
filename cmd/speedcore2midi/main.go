package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"midifarm/player"
	"midifarm/score"
)

const defaultTempo = 180

// speedcore2midi [bpm] [text...]
//
// Like acid2midi but harder and faster. A leading numeric argument sets
// the BPM; in that case the built-in demo text plays.
func main() {
	tempo := defaultTempo
	text := score.DefaultSpeedcoreText

	args := os.Args[1:]
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			tempo = n
		} else {
			text = strings.Join(args, " ")
		}
	}

	instruments := score.SpeedcoreInstruments()
	p := player.New(tempo)
	closeVoices, err := p.OpenVoices(instruments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "speedcore2midi: %v\n", err)
		os.Exit(1)
	}
	defer closeVoices()

	player.RouteVoices(instruments, os.Stderr)

	q, chars := score.EncodeSpeedcore(text)
	fmt.Printf("Encoding and playing SPEEDCORE/EXTRATONE pattern (%d characters) at BPM %d...\n\n", len(text), tempo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := p.Play(ctx, q, chars); err != nil {
		fmt.Fprintf(os.Stderr, "speedcore2midi: %v\n", err)
		os.Exit(1)
	}
}
