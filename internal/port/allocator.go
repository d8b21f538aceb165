package port

import "fmt"

// Allocator hands out host ports from preferred ranges.
//
// The search is sequential from the start of the range upward, so the
// same free port is selected consistently across runs: a project created
// on an idle machine always gets the range's first port (3306, 8000, ...).
//
// The allocator remembers every port it has granted during its lifetime.
// One Allocator is shared across all generators of a single create run,
// which is what prevents, say, a Python app service and an nginx service
// from both probing their way onto port 8000: the OS-level bind check
// cannot see a port that was granted a moment ago but is not bound yet.
type Allocator struct {
	// scanner probes the OS for actual port availability.
	scanner *Scanner

	// granted records ports already handed out during this run.
	granted map[int]bool
}

// NewAllocator creates an Allocator backed by the given Scanner.
func NewAllocator(scanner *Scanner) *Allocator {
	return &Allocator{
		scanner: scanner,
		granted: make(map[int]bool),
	}
}

// Reserve finds the first port in [start, end] (inclusive) that is free on
// the host and has not been granted earlier in this run, marks it granted,
// and returns it.
//
// Returns an error when the whole range is exhausted. The ranges are a
// hundred ports wide, so this only happens on hosts with very heavy port
// usage, a condition worth surfacing rather than papering over with a
// port that is known to be in use.
func (a *Allocator) Reserve(start, end int) (int, error) {
	if start < 1 || end > 65535 || start > end {
		return 0, fmt.Errorf("invalid port range %d-%d", start, end)
	}
	for port := start; port <= end; port++ {
		if a.granted[port] {
			continue
		}
		if !a.scanner.IsAvailable(port) {
			continue
		}
		a.granted[port] = true
		return port, nil
	}
	return 0, fmt.Errorf("no available port found in range %d-%d", start, end)
}

// Granted reports whether the allocator has handed out the given port.
func (a *Allocator) Granted(port int) bool {
	return a.granted[port]
}
