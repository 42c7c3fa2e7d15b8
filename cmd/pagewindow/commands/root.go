package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pagewindow",
		Short:         "Compute pagination metadata and page windows",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		NewDescribeCommand(),
		NewServeCommand(),
	)

	return rootCmd
}
