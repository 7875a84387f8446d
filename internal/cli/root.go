// Package cli wires the cobra command tree: a long-running API server and a
// one-shot terminal plan view for local use.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute builds the root command and runs it.
func Execute() error {
	var configPath string

	root := &cobra.Command{
		Use:   "supervity",
		Short: "Deterministic study planning for course assignments",
		Long: "Supervity synthesizes study plans from course assignments: urgency\n" +
			"classification, priority scoring, and budgeted study sessions, with\n" +
			"optional LLM-rendered recommendations.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newPlanCmd(&configPath))

	return root.Execute()
}
