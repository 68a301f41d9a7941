// Package netcheck answers "are we online right now". The result decides
// whether a message goes to the hosted model or the offline router.
package netcheck

import (
	"net"
	"sync"
	"time"
)

const (
	probeAddr    = "1.1.1.1:443"
	probeTimeout = 2 * time.Second
	cacheFor     = 10 * time.Second
)

// Checker probes connectivity with a TCP dial and caches the verdict
// briefly so back-to-back messages do not each pay for a probe.
type Checker struct {
	addr    string
	timeout time.Duration

	mu      sync.Mutex
	online  bool
	checked time.Time
}

func New() *Checker {
	return &Checker{addr: probeAddr, timeout: probeTimeout}
}

func (c *Checker) Online() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Since(c.checked) < cacheFor {
		return c.online
	}

	conn, err := net.DialTimeout("tcp", c.addr, c.timeout)
	if err == nil {
		conn.Close()
	}
	c.online = err == nil
	c.checked = time.Now()
	return c.online
}
