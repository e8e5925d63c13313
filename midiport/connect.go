package midiport

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"midifarm/debug"
)

// Routes maps "client_name:port_name" to the numeric "client:port"
// address that aconnect wants.
type Routes map[string]string

var (
	clientRe = regexp.MustCompile(`^client (\d+): '([^']+)'`)
	portRe   = regexp.MustCompile(`^\s+(\d+) '([^']+)'`)
)

// ParseAconnect reads `aconnect -l` output into a route table.
func ParseAconnect(out string) Routes {
	routes := Routes{}
	var clientNum, clientName string

	for _, line := range strings.Split(out, "\n") {
		if m := clientRe.FindStringSubmatch(line); m != nil {
			clientNum, clientName = m[1], m[2]
			continue
		}
		if clientNum == "" {
			continue
		}
		if m := portRe.FindStringSubmatch(line); m != nil {
			key := clientName + ":" + strings.TrimSpace(m[2])
			routes[key] = clientNum + ":" + m[1]
		}
	}
	return routes
}

// Find returns the address of the first port whose key contains name.
func (r Routes) Find(name string) (string, bool) {
	for key, addr := range r {
		if strings.Contains(key, name) {
			return addr, true
		}
	}
	return "", false
}

// ListRoutes shells out to aconnect for the current ALSA port table.
func ListRoutes() (Routes, error) {
	out, err := exec.Command("aconnect", "-l").Output()
	if err != nil {
		return nil, fmt.Errorf("aconnect -l: %w", err)
	}
	return ParseAconnect(string(out)), nil
}

const (
	connectAttempts = 5
	connectRetryGap = 500 * time.Millisecond
)

// Connect wires the ALSA port matching src to the one matching dst,
// retrying while the ports register. Freshly opened virtual ports take a
// moment to show up in the table.
func Connect(src, dst string) error {
	var lastErr error

	for i := 0; i < connectAttempts; i++ {
		routes, err := ListRoutes()
		if err != nil {
			return err
		}

		from, okFrom := routes.Find(src)
		to, okTo := routes.Find(dst)
		if !okFrom || !okTo {
			missing := src
			if okFrom {
				missing = dst
			}
			lastErr = fmt.Errorf("port not found: %s", missing)
			debug.Log("connect", "waiting for %s", missing)
			time.Sleep(connectRetryGap)
			continue
		}

		if err := exec.Command("aconnect", from, to).Run(); err != nil {
			lastErr = fmt.Errorf("aconnect %s %s: %w", from, to, err)
			debug.Log("connect", "retrying %s -> %s: %v", src, dst, err)
			time.Sleep(connectRetryGap)
			continue
		}

		debug.Log("connect", "%s -> %s", src, dst)
		return nil
	}
	return lastErr
}
