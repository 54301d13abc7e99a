package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotekeeper/internal/app"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// pullResult is the JSON payload of pull.
type pullResult struct {
	Added domain.Collection `json:"added"`
}

func newPullCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Append the remote quotes not already in the collection",
		Args:  usage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime, p *Printer) error {
				added, err := rt.Controller.Pull(ctx)
				if err != nil {
					return err
				}

				return p.Success(pullResult{Added: added},
					fmt.Sprintf("Pulled %d new quote(s).\n", len(added)))
			})
		},
	}
}

func newSyncCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push pending quotes, then merge the remote page",
		Args:  usage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime, p *Printer) error {
				report, err := rt.Controller.Sync(ctx)
				if err != nil {
					return err
				}

				return p.Success(report, syncSummary(report))
			})
		},
	}
}

func syncSummary(r app.SyncReport) string {
	if r.Skipped {
		return "A sync is already running, skipped.\n"
	}

	return fmt.Sprintf("Fetched %d, pushed %d, merged %d in %s.\n",
		r.Fetched, r.Pushed, r.Merged, r.Duration.Round(time.Millisecond))
}
