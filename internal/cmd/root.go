package cmd

import (
	"github.com/spf13/cobra"
)

const (
	groupCore  = "core"
	groupSetup = "setup"
)

var rootCmd = &cobra.Command{
	Use:   "presencectl",
	Short: "inspect and probe the local presence host IPC pipe",
	Long: `presencectl - talk to the presence host over its local IPC pipe
  - list the discord-ipc-N candidates the client probes
  - connect, report the bound pipe, and close it cleanly`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: groupCore, Title: "Core Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)
	rootCmd.AddCommand(versionCmd)
}
