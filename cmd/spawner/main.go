package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"midifarm/midiport"
)

// spawner [device_number]
//
// Creates one named virtual pass-through MIDI client and keeps it alive
// until interrupted. A missing or malformed argument falls back to
// device 1 without complaint, so shell loops can be sloppy about it.
func main() {
	number := midiport.ParseDeviceNumber(os.Args[1:])
	name := midiport.PortName(number)

	port, err := midiport.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spawner: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("%s up\n", name)
	if err := port.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "spawner: %v\n", err)
		os.Exit(1)
	}
}
