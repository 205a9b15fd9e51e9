package commands

import (
	"fmt"

	"tcpconnect/internal/version"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long:  "Display the current configuration settings for tcpconnect.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

func showConfig() error {
	cfg := cfgManager.GetConfig()

	fmt.Printf("Current Configuration:\n")
	fmt.Printf("  Version: %s\n", version.Version)
	fmt.Printf("  Config File: %s\n", cfgManager.GetConfigFile())
	fmt.Printf("  Default Timeout: %ds\n", cfg.DefaultTimeout)
	fmt.Printf("  Network: %s\n", cfg.Network)
	fmt.Printf("  Log File: %s\n", cfg.LogFile)
	fmt.Printf("  Log Level: %s\n", cfg.LogLevel)

	return nil
}
