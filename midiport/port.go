package midiport

import (
	"context"
	"fmt"

	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"midifarm/debug"
)

// VirtualPort is one named pass-through client: a virtual input and a
// virtual output under the same name, with every event received on the
// input forwarded unchanged to the output.
type VirtualPort struct {
	name string
	in   drivers.In
	out  drivers.Out
}

// Open registers the virtual client with the driver. The port exists for
// as long as the owning process lives.
func Open(name string) (*VirtualPort, error) {
	drv, ok := drivers.Get().(*rtmididrv.Driver)
	if !ok {
		return nil, fmt.Errorf("rtmididrv driver not available")
	}

	in, err := drv.OpenVirtualIn(name)
	if err != nil {
		return nil, fmt.Errorf("virtual input %q: %w", name, err)
	}

	out, err := drv.OpenVirtualOut(name)
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("virtual output %q: %w", name, err)
	}

	return &VirtualPort{name: name, in: in, out: out}, nil
}

// Name returns the client name.
func (p *VirtualPort) Name() string {
	return p.name
}

// Run installs the pass-through rule and blocks until the context is
// cancelled. Cancellation is external - there is no shutdown sequence
// beyond closing the ports.
func (p *VirtualPort) Run(ctx context.Context) error {
	stop, err := p.in.Listen(passThrough(p.name, p.out.Send), drivers.ListenConfig{
		TimeCode: true,
	})
	if err != nil {
		return fmt.Errorf("listen on %q: %w", p.name, err)
	}
	defer stop()

	debug.Log("port", "%s: pass-through running", p.name)
	<-ctx.Done()
	debug.Log("port", "%s: shutting down", p.name)
	return nil
}

// Close releases both driver ports.
func (p *VirtualPort) Close() {
	p.in.Close()
	p.out.Close()
}

// passThrough builds the listen callback: every message goes to send
// unmodified. Send errors are logged and dropped - the driver thread must
// never stall.
func passThrough(name string, send func([]byte) error) func(msg []byte, milliseconds int32) {
	return func(msg []byte, _ int32) {
		if err := send(msg); err != nil {
			debug.Log("port", "%s: send failed: %v", name, err)
		}
	}
}
