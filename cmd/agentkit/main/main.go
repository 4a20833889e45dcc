package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/agentkit/cmd/agentkit"
	"github.com/arthur-debert/agentkit/pkg/style"
)

func main() {
	rootCmd := agentkit.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
