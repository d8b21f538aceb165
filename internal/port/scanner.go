package port

import (
	"fmt"
	"net"
)

// Scanner checks whether specific TCP ports are available on the host.
//
// It uses the operating system's network stack (net.Listen) to determine
// if a port is free. Asking the OS directly is more reliable than parsing
// /proc/net/* or shelling out to lsof/ss, which may require elevated
// permissions.
//
// The struct is stateless, but defined as a struct rather than bare
// functions so it can be injected into the Allocator and replaced in
// tests if needed.
type Scanner struct{}

// NewScanner creates a new Scanner instance.
func NewScanner() *Scanner {
	return &Scanner{}
}

// IsAvailable checks whether a single TCP port is free on the host.
//
// It binds to all interfaces (":port" rather than "127.0.0.1:port")
// because Docker publishes ports on 0.0.0.0, so the same address space
// must be checked to avoid false positives.
func (s *Scanner) IsAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	// The listener is only needed to test availability, not to accept
	// connections, so close it immediately.
	defer func() { _ = listener.Close() }()
	return true
}
