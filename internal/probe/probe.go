// Package probe implements a bounded, single-shot TCP connection attempt.
package probe

import (
	"net/netip"
	"time"

	"github.com/sirupsen/logrus"
)

// Outcome classifies the result of a connection attempt.
type Outcome int

const (
	// Connected means the TCP handshake completed.
	Connected Outcome = iota
	// TimedOut means no completion was signalled within the target's timeout.
	TimedOut
	// Failed means the handshake or a socket operation reported an error.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Connected:
		return "connected"
	case TimedOut:
		return "timed out"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Target identifies a single connection attempt. It is consumed once.
type Target struct {
	Addr    netip.Addr
	Port    uint16
	Timeout time.Duration
}

// Result is the sole observable outcome of an attempt. Errno carries the
// numeric system error code when one exists, zero otherwise.
type Result struct {
	Outcome Outcome
	Elapsed time.Duration
	Errno   int
	Err     error
}

// Prober performs connection attempts. Every attempt owns an independent
// socket, so a single Prober is safe for concurrent use.
type Prober struct {
	logger *logrus.Logger
}

// New creates a new prober
func New(logger *logrus.Logger) *Prober {
	return &Prober{
		logger: logger,
	}
}

// Attempt tries to establish a TCP connection to the target. It blocks for
// at most target.Timeout and closes the socket on every path. A zero timeout
// means the attempt fails immediately unless the connect completes
// synchronously.
func (p *Prober) Attempt(target Target) Result {
	start := time.Now()
	result := p.attempt(target)
	result.Elapsed = time.Since(start)

	p.logger.Debugf("Connection attempt to %s port %d: %s after %s",
		target.Addr, target.Port, result.Outcome, result.Elapsed)

	return result
}
