// Package sysinfo gathers host facts for the diagnostics command.
package sysinfo

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	gopsnet "github.com/shirou/gopsutil/v4/net"
	"github.com/sirupsen/logrus"
)

// Collector handles host information collection
type Collector struct {
	logger *logrus.Logger
}

// New creates a new collector
func New(logger *logrus.Logger) *Collector {
	return &Collector{
		logger: logger,
	}
}

// HostInfo describes the machine the tool is running on
type HostInfo struct {
	Hostname        string
	Platform        string
	PlatformVersion string
	Uptime          uint64
}

// GetHostInfo collects basic host information
func (c *Collector) GetHostInfo() HostInfo {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		c.logger.Warnf("Failed to get host info: %v", err)
		return HostInfo{}
	}

	return HostInfo{
		Hostname:        info.Hostname,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		Uptime:          info.Uptime,
	}
}

// Interface describes one network interface and its addresses
type Interface struct {
	Name      string
	MTU       int
	Flags     []string
	Addresses []string
}

// GetInterfaces lists the host's network interfaces
func (c *Collector) GetInterfaces() []Interface {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ifaces, err := gopsnet.InterfacesWithContext(ctx)
	if err != nil {
		c.logger.Warnf("Failed to list network interfaces: %v", err)
		return nil
	}

	result := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		entry := Interface{
			Name:  iface.Name,
			MTU:   iface.MTU,
			Flags: iface.Flags,
		}
		for _, addr := range iface.Addrs {
			entry.Addresses = append(entry.Addresses, addr.Addr)
		}
		result = append(result, entry)
	}

	return result
}
