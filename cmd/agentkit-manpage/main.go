package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/agentkit/cmd/agentkit"
	"github.com/arthur-debert/agentkit/internal/version"
)

func main() {
	rootCmd := agentkit.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "AGENTKIT",
		Section: "1",
		Source:  "agentkit " + version.Version,
		Manual:  "agentkit manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
