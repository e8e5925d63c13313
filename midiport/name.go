package midiport

import (
	"fmt"
	"strconv"
)

// DefaultNumber is the device number used when none is given.
const DefaultNumber = 1

// The DAW side addresses the farm by these names, so the format is fixed.
const nameTemplate = "virtual-%d"

// PortName returns the client name for a device number.
func PortName(n int) string {
	return fmt.Sprintf(nameTemplate, n)
}

// ParseDeviceNumber extracts the device number from positional CLI args.
// A missing, non-numeric or non-positive argument falls back silently to
// DefaultNumber.
func ParseDeviceNumber(args []string) int {
	if len(args) == 0 {
		return DefaultNumber
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return DefaultNumber
	}
	return n
}
