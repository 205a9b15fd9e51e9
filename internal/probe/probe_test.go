package probe

import (
	"net"
	"net/netip"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

// listen opens a loopback listener and returns its address, port and a stop
// function. Stopping before connecting yields a port that actively refuses.
func listen(t *testing.T) (netip.Addr, uint16, func()) {
	t.Helper()

	l, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)

	addrPort := netip.MustParseAddrPort(l.Addr().String())
	return addrPort.Addr(), addrPort.Port(), func() { _ = l.Close() }
}

func TestAttemptConnected(t *testing.T) {
	addr, port, stop := listen(t)
	defer stop()

	result := New(testLogger()).Attempt(Target{
		Addr:    addr,
		Port:    port,
		Timeout: 5 * time.Second,
	})

	assert.Equal(t, Connected, result.Outcome)
	assert.NoError(t, result.Err)
	assert.Zero(t, result.Errno)
	assert.Less(t, result.Elapsed, 5*time.Second)
}

func TestAttemptRefused(t *testing.T) {
	addr, port, stop := listen(t)
	stop() // nothing listens on this port anymore

	result := New(testLogger()).Attempt(Target{
		Addr:    addr,
		Port:    port,
		Timeout: 10 * time.Second,
	})

	assert.Equal(t, Failed, result.Outcome)
	assert.Error(t, result.Err)
	assert.NotZero(t, result.Errno)
	assert.Less(t, result.Elapsed, time.Second, "a refusal must not consume the deadline")
}

func TestAttemptTimedOut(t *testing.T) {
	if testing.Short() {
		t.Skip("talks to a blackholed TEST-NET address")
	}

	// 192.0.2.1 (TEST-NET-1) is reserved and should never answer.
	result := New(testLogger()).Attempt(Target{
		Addr:    netip.MustParseAddr("192.0.2.1"),
		Port:    80,
		Timeout: 2 * time.Second,
	})

	if result.Outcome == Failed {
		t.Skipf("network rejected the probe instead of dropping it: %v", result.Err)
	}

	assert.Equal(t, TimedOut, result.Outcome)
	assert.InDelta(t, (2 * time.Second).Seconds(), result.Elapsed.Seconds(), 0.5)
}

func TestAttemptZeroTimeout(t *testing.T) {
	// A zero timeout means the wait starts already expired, so the attempt
	// must come back immediately with anything but Connected.
	result := New(testLogger()).Attempt(Target{
		Addr:    netip.MustParseAddr("192.0.2.1"),
		Port:    80,
		Timeout: 0,
	})

	assert.NotEqual(t, Connected, result.Outcome)
	assert.Less(t, result.Elapsed, time.Second)
}

func TestAttemptDoesNotLeakSockets(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("fd accounting via /proc is linux-only")
	}

	openAddr, openPort, stopOpen := listen(t)
	defer stopOpen()
	closedAddr, closedPort, stopClosed := listen(t)
	stopClosed()

	prober := New(testLogger())
	baseline := openFDCount(t)

	for i := 0; i < 25; i++ {
		prober.Attempt(Target{Addr: openAddr, Port: openPort, Timeout: time.Second})
		prober.Attempt(Target{Addr: closedAddr, Port: closedPort, Timeout: time.Second})
	}

	assert.Equal(t, baseline, openFDCount(t))
}

func openFDCount(t *testing.T) int {
	t.Helper()

	entries, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	return len(entries)
}

func TestAttemptIdempotent(t *testing.T) {
	addr, port, stop := listen(t)
	defer stop()

	prober := New(testLogger())
	for i := 0; i < 5; i++ {
		result := prober.Attempt(Target{Addr: addr, Port: port, Timeout: 2 * time.Second})
		assert.Equal(t, Connected, result.Outcome)
	}
}
