package main

import (
	"os"

	"tcpconnect/cmd/tcpconnect/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
