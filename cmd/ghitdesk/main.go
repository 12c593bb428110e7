package main

import (
	"os"

	"github.com/spf13/cobra"

	"ghitdesk/internal/interfaces/cli/assistant"
	"ghitdesk/internal/interfaces/cli/snapshot"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ghitdesk",
		Short: "GhitDesk - helpdesk domain store",
		Long:  `GhitDesk manages tickets, tasks, contacts, calendar events, and automation flows over a snapshot-persisted local store, with an AI assistant for flow editing.`,
	}

	rootCmd.AddCommand(
		assistant.NewCommand(),
		snapshot.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
