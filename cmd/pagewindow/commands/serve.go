package commands

import (
	"os/signal"
	"syscall"

	"github.com/maxviazov/pagewindow/internal/app"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx, configFile)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "config file path")
	return cmd
}
