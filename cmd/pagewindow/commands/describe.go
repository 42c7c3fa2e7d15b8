package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maxviazov/pagewindow/internal/app"
	"github.com/maxviazov/pagewindow/internal/config"
	"github.com/maxviazov/pagewindow/internal/service"
	"github.com/maxviazov/pagewindow/pkg/pagination"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewDescribeCommand creates the describe command
func NewDescribeCommand() *cobra.Command {
	var (
		configFile                                    string
		totalItems, pageSize, currentPage, windowSize int
		actions                                       []string
		steps                                         bool
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print pagination metadata as JSON",
		Example: `  pagewindow describe --total-items 100 --current-page 4
  pagewindow describe --total-items 100 --action next --action last --steps`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := zerolog.New(cmd.ErrOrStderr()).Level(zerolog.WarnLevel)
			svc := app.NewService(cfg, log)

			// only flags the user actually passed count as "set"
			var pc pagination.Config
			flags := cmd.Flags()
			if flags.Changed("total-items") {
				pc.TotalItems = pagination.Int(totalItems)
			}
			if flags.Changed("page-size") {
				pc.PageSize = pagination.Int(pageSize)
			}
			if flags.Changed("current-page") {
				pc.CurrentPage = pagination.Int(currentPage)
			}
			if flags.Changed("window-size") {
				pc.WindowSize = pagination.Int(windowSize)
			}

			res, err := svc.Navigate(cmd.Context(), service.NavigateRequest{Config: pc, Actions: actions})
			if err != nil {
				return describeError(err)
			}

			var out any = res.Final
			if steps {
				out = res
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configFile, "config", "c", "", "optional config file with pagination defaults")
	f.IntVar(&totalItems, "total-items", pagination.DefaultTotalItems, "total number of items")
	f.IntVar(&pageSize, "page-size", pagination.DefaultPageSize, "items per page")
	f.IntVar(&currentPage, "current-page", pagination.DefaultCurrentPage, "current page")
	f.IntVar(&windowSize, "window-size", pagination.DefaultWindowSize, "page numbers shown around the current page")
	f.StringArrayVarP(&actions, "action", "a", nil, "navigation step, repeatable: first|last|next|previous|goto:N|page_size:N|window_size:N|total_items:N")
	f.BoolVar(&steps, "steps", false, "print the state after every action instead of the final state only")
	return cmd
}

// describeError flattens field errors into one readable line.
func describeError(err error) error {
	fe := service.FieldErrors(err)
	if len(fe) == 0 {
		return err
	}
	parts := make([]string, 0, len(fe))
	for _, f := range fe {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Errorf("%w: %s", err, strings.Join(parts, "; "))
}
