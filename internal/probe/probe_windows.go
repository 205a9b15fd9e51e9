//go:build windows

package probe

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"
	"time"
)

// Windows has no select/SO_ERROR surface in golang.org/x/sys/unix, so the
// attempt delegates to the runtime dialer, which performs the same bounded
// non-blocking connect internally.
func (p *Prober) attempt(target Target) Result {
	timeout := target.Timeout
	if timeout <= 0 {
		// DialTimeout treats zero as "no limit"; keep the documented
		// fail-immediately semantics instead.
		timeout = time.Nanosecond
	}

	address := net.JoinHostPort(target.Addr.String(), strconv.Itoa(int(target.Port)))

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err == nil {
		_ = conn.Close()
		return Result{Outcome: Connected}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Result{Outcome: TimedOut}
	}

	result := Result{
		Outcome: Failed,
		Err:     fmt.Errorf("unable to connect: %w", err),
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		result.Errno = int(errno)
	}

	return result
}
