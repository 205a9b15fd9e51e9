package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tcpconnect/internal/probe"
	"tcpconnect/internal/resolver"

	"github.com/spf13/cobra"
)

// runCheck performs the one-shot connection check against the positional
// host, port and optional timeout arguments.
func runCheck(cmd *cobra.Command, args []string) error {
	cfg := cfgManager.GetConfig()

	host := args[0]

	port, err := parsePort(args[1])
	if err != nil {
		return err
	}

	// Arguments are sound; connection failures should not print usage.
	cmd.SilenceUsage = true

	timeout := time.Duration(cfg.DefaultTimeout) * time.Second
	if len(args) == 3 {
		timeout = parseTimeout(args[2], timeout)
	}

	netPref := network
	if netPref == "" {
		netPref = cfg.Network
	}

	addr, err := resolver.New(logger).Resolve(context.Background(), host, netPref)
	if err != nil {
		return fmt.Errorf("unable to resolve host: %s: %w", host, err)
	}

	result := probe.New(logger).Attempt(probe.Target{
		Addr:    addr,
		Port:    port,
		Timeout: timeout,
	})

	switch result.Outcome {
	case probe.Connected:
		fmt.Printf("Successfully connected to host: %s on port: %d\n", host, port)
		return nil
	case probe.TimedOut:
		return fmt.Errorf("unable to connect, timed out, to host: %s on port: %d, timeout: %s", host, port, timeout)
	default:
		if result.Errno != 0 {
			return fmt.Errorf("unable to connect to host: %s on port: %d, errno=%d (%v)", host, port, result.Errno, result.Err)
		}
		return fmt.Errorf("unable to connect to host: %s on port: %d: %w", host, port, result.Err)
	}
}

// parsePort accepts ports 1-65535. Port zero is a usage error, never a
// connection attempt.
func parsePort(arg string) (uint16, error) {
	port, err := strconv.Atoi(arg)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port: %s", arg)
	}
	return uint16(port), nil
}

// parseTimeout honours an explicit zero, which means "fail immediately
// unless the connect completes synchronously". Anything unparseable or
// negative falls back to the default with a warning.
func parseTimeout(arg string, fallback time.Duration) time.Duration {
	seconds, err := strconv.Atoi(arg)
	if err != nil || seconds < 0 {
		logger.Warnf("Invalid timeout: %s, using default timeout: %s", arg, fallback)
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
