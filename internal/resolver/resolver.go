// Package resolver maps hostnames to connectable IP addresses.
package resolver

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/sirupsen/logrus"
)

// LookupTimeout bounds a single name resolution.
const LookupTimeout = 5 * time.Second

// Resolver handles name-to-address resolution
type Resolver struct {
	logger *logrus.Logger
}

// New creates a new resolver
func New(logger *logrus.Logger) *Resolver {
	return &Resolver{
		logger: logger,
	}
}

// Resolve maps host to a single IP address. network selects the address
// family: "tcp" accepts either, "tcp4" and "tcp6" restrict to IPv4 or IPv6.
// Literal IP addresses bypass the resolver entirely.
func (r *Resolver) Resolve(ctx context.Context, host, network string) (netip.Addr, error) {
	family, err := lookupNetwork(network)
	if err != nil {
		return netip.Addr{}, err
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		addr = addr.Unmap()
		if !familyMatches(addr, family) {
			return netip.Addr{}, fmt.Errorf("address %s does not match network %s", addr, network)
		}
		return addr, nil
	}

	ctx, cancel := context.WithTimeout(ctx, LookupTimeout)
	defer cancel()

	addrs, err := net.DefaultResolver.LookupNetIP(ctx, family, host)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("lookup failed: %w", err)
	}
	if len(addrs) == 0 {
		return netip.Addr{}, fmt.Errorf("no addresses found for %s", host)
	}

	addr := addrs[0].Unmap()
	r.logger.Debugf("Resolved %s to %s", host, addr)

	return addr, nil
}

// lookupNetwork maps the dial-style network name to the resolver's
// address-family selector.
func lookupNetwork(network string) (string, error) {
	switch network {
	case "", "tcp":
		return "ip", nil
	case "tcp4":
		return "ip4", nil
	case "tcp6":
		return "ip6", nil
	}
	return "", fmt.Errorf("unsupported network: %s", network)
}

func familyMatches(addr netip.Addr, family string) bool {
	switch family {
	case "ip4":
		return addr.Is4()
	case "ip6":
		return addr.Is6()
	}
	return true
}
