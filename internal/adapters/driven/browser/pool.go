package browser

import (
	"context"
	"fmt"
	"net"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// PortPool hands out remote-debugging ports for concurrent headless
// browser instances. Ports are claimed FIFO and must be released after
// the browser using them exits, or the pool drains permanently.
type PortPool struct {
	ports chan int
}

// NewPortPool probes the given range and pools up to size free ports.
func NewPortPool(startPort, endPort, size int) (*PortPool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("pool size must be positive, got %d", size)
	}

	ports := make(chan int, size)
	for port := startPort; port <= endPort && len(ports) < size; port++ {
		if portFree(port) {
			ports <- port
		}
	}
	if len(ports) == 0 {
		return nil, fmt.Errorf("no free port in range %d-%d", startPort, endPort)
	}
	return &PortPool{ports: ports}, nil
}

// Acquire takes the next free port, blocking until one is released or
// the context ends.
func (p *PortPool) Acquire(ctx context.Context) (int, error) {
	select {
	case port := <-p.ports:
		return port, nil
	case <-ctx.Done():
		return 0, fmt.Errorf("%w: %v", domain.ErrPoolExhausted, ctx.Err())
	}
}

// Release returns a port to the pool.
func (p *PortPool) Release(port int) {
	select {
	case p.ports <- port:
	default:
		// Releasing more ports than were acquired is a caller bug;
		// dropping the extra keeps the pool bounded.
	}
}

// Size reports the number of ports currently available.
func (p *PortPool) Size() int {
	return len(p.ports)
}

// portFree reports whether a local TCP port can be bound.
func portFree(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return false
	}
	listener.Close()
	return true
}
