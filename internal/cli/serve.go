package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "github.com/jsamuelsen/quotekeeper/internal/adapters/http"
	"github.com/jsamuelsen/quotekeeper/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotekeeper/internal/app"
)

func newServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and run the periodic sync",
		Long: `Serve the HTTP API. When sync.enabled is set and the remote API is enabled,
a sync also runs every sync.interval. SIGINT or SIGTERM stops both.`,
		Args: usage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime, _ *Printer) error {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				return serve(ctx, rt)
			})
		},
	}
}

// serve runs the HTTP server and the scheduler until ctx is done or one of
// them fails.
func serve(ctx context.Context, rt *Runtime) error {
	cfg := rt.Config

	rt.Logger.InfoContext(ctx, "starting quotekeeper",
		slog.String("version", rt.BuildInfo.Version),
		slog.String("commit", rt.BuildInfo.Commit),
		slog.String("environment", cfg.App.Environment),
		slog.Int("quotes", len(rt.Controller.All())),
	)

	server := httpadapter.New(&cfg.Server, rt.Logger)
	httpadapter.SetupRouter(server.Engine(), httpadapter.RouterConfig{
		Logger:      rt.Logger,
		ServiceName: cfg.App.Name,
		HealthHandler: handlers.NewHealthHandler(handlers.HealthHandlerConfig{
			Registry:  rt.Health,
			BuildInfo: rt.BuildInfo,
			Metrics:   rt.Metrics.Handler(),
		}),
		QuoteHandler: handlers.NewQuoteHandler(rt.Controller),
		Timeout:      cfg.Server.RequestTimeout,
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(ctx)
	})

	if cfg.Sync.Enabled && rt.Remote != nil {
		scheduler := app.NewScheduler(app.SchedulerConfig{
			Interval:   cfg.Sync.Interval,
			RunOnStart: cfg.Sync.RunOnStart,
			Task: func(ctx context.Context) error {
				_, err := rt.Controller.Sync(ctx)
				return err
			},
			Metrics: rt.Metrics,
			Logger:  rt.Logger,
		})

		if err := scheduler.Start(ctx); err != nil {
			return fmt.Errorf("starting scheduler: %w", err)
		}

		g.Go(func() error {
			<-ctx.Done()
			scheduler.Stop()

			rt.Logger.Info("scheduler stopped", slog.Int64("ticks_skipped", scheduler.Skipped()))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	rt.Logger.Info("shutdown complete")

	return nil
}
