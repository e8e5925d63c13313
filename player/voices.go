package player

import (
	"fmt"
	"io"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"midifarm/midiport"
	"midifarm/score"
)

// OpenVoices opens one virtual output per instrument and registers each
// with the player. Returns a cleanup that closes the ports. If any
// port fails to open, the ones already open are closed again.
func (p *Player) OpenVoices(instruments []score.Instrument) (func(), error) {
	drv, ok := drivers.Get().(*rtmididrv.Driver)
	if !ok {
		return nil, fmt.Errorf("rtmididrv driver not available")
	}

	var outs []drivers.Out
	cleanup := func() {
		for _, out := range outs {
			out.Close()
		}
	}

	for _, ins := range instruments {
		out, err := drv.OpenVirtualOut(ins.SourcePort)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("virtual output %q: %w", ins.SourcePort, err)
		}
		outs = append(outs, out)

		send, err := gomidi.SendTo(out)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("sender for %q: %w", ins.SourcePort, err)
		}
		p.AddVoice(ins.Name, ins.Channel, Sender(send))
	}
	return cleanup, nil
}

// Freshly opened virtual ports take a moment to register with ALSA
// before aconnect can see them.
const routeSettle = 500 * time.Millisecond

// RouteVoices connects each instrument's source port to its farm
// pass-through port. A route that cannot be made prints a warning and
// playback proceeds to whatever did connect.
func RouteVoices(instruments []score.Instrument, warn io.Writer) {
	time.Sleep(routeSettle)
	for _, ins := range instruments {
		if err := midiport.Connect(ins.SourcePort, ins.FarmPort); err != nil {
			fmt.Fprintf(warn, "Failed to connect %s to %s; continuing...\n", ins.SourcePort, ins.FarmPort)
		}
	}
}
