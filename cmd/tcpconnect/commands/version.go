package commands

import (
	"fmt"

	"tcpconnect/internal/version"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the tool version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tcpconnect v%s\n", version.Version)
	},
}
