package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"midifarm/midiport"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "detect":
		detectFarm()
	case "send":
		testSend()
	case "routes":
		showRoutes()
	case "poll":
		pollDevices()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list    - List all MIDI ports")
	fmt.Println("  detect  - Find the farm's virtual ports")
	fmt.Println("  send    - Play a test note on virtual-1")
	fmt.Println("  routes  - Dump the ALSA client graph")
	fmt.Println("  poll    - Poll for device changes")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ins := midi.GetInPorts()
		outs := midi.GetOutPorts()
		ch <- result{ins: ins, outs: outs}
	}()

	select {
	case r := <-ch:
		for i, p := range r.ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
		fmt.Println("\n=== MIDI Output Ports ===")
		for i, p := range r.outs {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! The MIDI backend is hung.")
	}
}

func detectFarm() {
	fmt.Println("Looking for farm ports...")

	outs := midi.GetOutPorts()

	found := 0
	for n := 1; n <= 16; n++ {
		want := midiport.PortName(n)
		for i, p := range outs {
			if strings.Contains(p.String(), want) {
				fmt.Printf("Found: %d: %s\n", i, p.String())
				found++
				break
			}
		}
	}

	if found > 0 {
		fmt.Printf("\n%d farm ports up\n", found)
	} else {
		fmt.Println("\nNo farm ports found. Is the launcher running?")
	}
}

func testSend() {
	want := midiport.PortName(midiport.DefaultNumber)
	fmt.Printf("Sending a test note to %s...\n", want)

	outs := midi.GetOutPorts()
	var outPort drivers.Out
	for _, p := range outs {
		if strings.Contains(p.String(), want) {
			outPort = p
			break
		}
	}

	if outPort == nil {
		fmt.Printf("%s not found\n", want)
		return
	}

	fmt.Printf("Using output: %s\n", outPort.String())

	send, err := midi.SendTo(outPort)
	if err != nil {
		fmt.Printf("Error opening port: %v\n", err)
		return
	}

	if err := send(midi.NoteOn(0, 60, 100)); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	time.Sleep(500 * time.Millisecond)
	send(midi.NoteOff(0, 60))

	fmt.Println("Done! If something is connected downstream you heard a middle C")
}

func showRoutes() {
	routes, err := midiport.ListRoutes()
	if err != nil {
		fmt.Printf("Error running aconnect: %v\n", err)
		return
	}

	fmt.Println("=== ALSA clients ===")
	for name, addr := range routes {
		fmt.Printf("  %-8s %s\n", addr, name)
	}
}

func pollDevices() {
	fmt.Println("Polling for device changes every 2 seconds...")
	fmt.Println("Start/stop the farm to test. Ctrl+C to exit.")

	lastIn := ""
	lastOut := ""

	for {
		ins := midi.GetInPorts()
		outs := midi.GetOutPorts()

		var inNames, outNames []string
		for _, p := range ins {
			inNames = append(inNames, p.String())
		}
		for _, p := range outs {
			outNames = append(outNames, p.String())
		}

		currentIn := strings.Join(inNames, ",")
		currentOut := strings.Join(outNames, ",")

		if currentIn != lastIn || currentOut != lastOut {
			fmt.Printf("\n[%s] Device change detected!\n", time.Now().Format("15:04:05"))
			fmt.Printf("  Inputs: %v\n", inNames)
			fmt.Printf("  Outputs: %v\n", outNames)

			for _, name := range outNames {
				if strings.Contains(name, "virtual-") {
					fmt.Println("  -> farm port")
				}
			}

			lastIn = currentIn
			lastOut = currentOut
		}

		time.Sleep(2 * time.Second)
	}
}
