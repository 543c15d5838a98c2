package main

import (
	"os"

	"github.com/spf13/cobra"

	"glowtrack/internal/interfaces/cli/server"
	"glowtrack/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glowtrack",
		Short: "Glowtrack - skincare routine and streak tracking service",
		Long:  `Glowtrack tracks weekly skincare routines, session completion, and daily activity streaks. It ships an HTTP API server and a scheduled batch worker.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		worker.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
