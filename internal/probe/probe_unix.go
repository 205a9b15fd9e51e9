//go:build unix

package probe

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func (p *Prober) attempt(target Target) Result {
	family := unix.AF_INET
	if target.Addr.Is6() {
		family = unix.AF_INET6
	}

	fd, err := unix.Socket(family, unix.SOCK_STREAM, 0)
	if err != nil {
		return errnoResult("unable to create socket", err)
	}
	defer unix.Close(fd)
	unix.CloseOnExec(fd)

	// The connect call must return immediately; completion is picked up
	// by the readiness wait below.
	if err := unix.SetNonblock(fd, true); err != nil {
		return errnoResult("unable to set non-blocking mode", err)
	}

	deadline := time.Now().Add(target.Timeout)

	err = unix.Connect(fd, sockaddr(target))
	switch {
	case err == nil:
		// Completed synchronously. Common for loopback targets.
		return Result{Outcome: Connected}
	case errors.Is(err, unix.EINPROGRESS):
		// The expected case for a non-blocking connect.
	default:
		return errnoResult("unable to connect", err)
	}

	ready, err := p.waitReady(fd, deadline)
	if err != nil {
		return errnoResult("readiness wait failed", err)
	}
	if !ready {
		return Result{Outcome: TimedOut}
	}

	// Readiness alone is ambiguous: the socket becomes readable/writable
	// for both successful and failed completion. SO_ERROR holds the
	// pending connect result and is cleared by this query.
	soerr, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
	if err != nil {
		return errnoResult("unable to check status of socket", err)
	}
	if soerr != 0 {
		errno := unix.Errno(soerr)
		return Result{
			Outcome: Failed,
			Errno:   soerr,
			Err:     fmt.Errorf("unable to connect: %w", errno),
		}
	}

	return Result{Outcome: Connected}
}

// waitReady blocks until fd becomes readable or writable, or the deadline
// passes. It reports false on deadline expiry. A wait interrupted by a
// signal restarts against the same absolute deadline.
func (p *Prober) waitReady(fd int, deadline time.Time) (bool, error) {
	for {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}

		var readSet, writeSet unix.FdSet
		readSet.Set(fd)
		writeSet.Set(fd)
		tv := unix.NsecToTimeval(remaining.Nanoseconds())

		n, err := unix.Select(fd+1, &readSet, &writeSet, nil, &tv)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return false, err
		}

		return n > 0, nil
	}
}

func sockaddr(target Target) unix.Sockaddr {
	if target.Addr.Is6() {
		return &unix.SockaddrInet6{
			Port: int(target.Port),
			Addr: target.Addr.As16(),
		}
	}
	return &unix.SockaddrInet4{
		Port: int(target.Port),
		Addr: target.Addr.As4(),
	}
}

func errnoResult(msg string, err error) Result {
	result := Result{
		Outcome: Failed,
		Err:     fmt.Errorf("%s: %w", msg, err),
	}

	var errno unix.Errno
	if errors.As(err, &errno) {
		result.Errno = int(errno)
	}

	return result
}
