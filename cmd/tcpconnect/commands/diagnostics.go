package commands

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"tcpconnect/internal/sysinfo"
	"tcpconnect/internal/utils"
	"tcpconnect/internal/version"

	"github.com/spf13/cobra"
)

// diagnosticsCmd represents the diagnostics command
var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Show detailed system diagnostics",
	Long:  "Display diagnostic information about the tool, the host, and its network interfaces.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showDiagnostics()
	},
}

func showDiagnostics() error {
	cfg := cfgManager.GetConfig()
	collector := sysinfo.New(logger)

	fmt.Printf("tcpconnect Diagnostics v%s\n", version.Version)
	fmt.Printf("=====================================\n\n")

	// System Information
	fmt.Printf("=== System Information ===\n")
	fmt.Printf("OS: %s\n", runtime.GOOS)
	fmt.Printf("Architecture: %s\n", runtime.GOARCH)

	hostInfo := collector.GetHostInfo()
	if hostInfo.Platform != "" {
		fmt.Printf("Platform: %s %s\n", hostInfo.Platform, hostInfo.PlatformVersion)
	}
	if hostInfo.Hostname != "" {
		fmt.Printf("Hostname: %s\n", hostInfo.Hostname)
	}
	if hostInfo.Uptime > 0 {
		fmt.Printf("Uptime: %s\n", time.Duration(hostInfo.Uptime)*time.Second)
	}

	if kernelVersion, err := utils.GetKernelVersion(); err == nil {
		fmt.Printf("Kernel: %s\n", kernelVersion)
	}

	fmt.Printf("\n")

	// Tool Information
	fmt.Printf("=== Tool Information ===\n")
	fmt.Printf("Version: %s\n", version.Version)

	if execPath, err := os.Executable(); err == nil {
		fmt.Printf("Executable Path: %s\n", execPath)

		if stat, err := os.Stat(execPath); err == nil {
			fmt.Printf("Executable Size: %d bytes\n", stat.Size())
			fmt.Printf("Last Modified: %s\n", stat.ModTime().Format(time.RFC3339))
		}
	}

	fmt.Printf("Config File: %s\n", cfgManager.GetConfigFile())
	fmt.Printf("Log File: %s\n", cfg.LogFile)
	fmt.Printf("Log Level: %s\n", cfg.LogLevel)
	fmt.Printf("\n")

	// Configuration Status
	fmt.Printf("=== Configuration Status ===\n")
	configFile := cfgManager.GetConfigFile()
	if stat, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file exists: Yes\n")
		fmt.Printf("Config file size: %d bytes\n", stat.Size())
	} else {
		fmt.Printf("Config file exists: No (using defaults)\n")
	}
	fmt.Printf("Default Timeout: %ds\n", cfg.DefaultTimeout)
	fmt.Printf("Network: %s\n", cfg.Network)
	fmt.Printf("\n")

	// Network Interfaces
	fmt.Printf("=== Network Interfaces ===\n")
	interfaces := collector.GetInterfaces()
	if len(interfaces) == 0 {
		fmt.Printf("No network interfaces found\n")
	}
	for _, iface := range interfaces {
		fmt.Printf("%s (MTU %d", iface.Name, iface.MTU)
		if len(iface.Flags) > 0 {
			fmt.Printf(", %s", strings.Join(iface.Flags, "|"))
		}
		fmt.Printf(")\n")
		for _, addr := range iface.Addresses {
			fmt.Printf("  %s\n", addr)
		}
	}
	fmt.Printf("\n")

	// Recent Logs
	fmt.Printf("=== Recent Logs (last 10 lines) ===\n")
	if cfg.LogFile == "" {
		fmt.Printf("No log file configured\n")
	} else if logLines := getRecentLogs(cfg.LogFile); len(logLines) > 0 {
		for _, line := range logLines {
			fmt.Printf("%s\n", line)
		}
	} else {
		fmt.Printf("No recent logs found or log file does not exist\n")
	}

	return nil
}

func getRecentLogs(logFile string) []string {
	var lines []string

	// Read last 10 lines using tail-like approach
	output, err := exec.Command("tail", "-10", logFile).Output()
	if err != nil {
		return lines
	}

	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines
}
