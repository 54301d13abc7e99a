package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/clients"
	"github.com/jsamuelsen/quotekeeper/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotekeeper/internal/adapters/flags"
	"github.com/jsamuelsen/quotekeeper/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotekeeper/internal/adapters/storage"
	"github.com/jsamuelsen/quotekeeper/internal/app"
	"github.com/jsamuelsen/quotekeeper/internal/platform/config"
	"github.com/jsamuelsen/quotekeeper/internal/platform/logging"
	"github.com/jsamuelsen/quotekeeper/internal/platform/metrics"
	"github.com/jsamuelsen/quotekeeper/internal/platform/telemetry"
	"github.com/jsamuelsen/quotekeeper/internal/ports"
)

// Runtime is the wired application shared by every command.
type Runtime struct {
	Config     *config.Config
	Logger     *slog.Logger
	Controller *app.QuoteController
	Health     *ports.DefaultHealthRegistry
	Metrics    *metrics.Metrics
	BuildInfo  handlers.BuildInfo

	// Remote is nil when remote.enabled is false.
	Remote *acl.RemoteQuoteClient

	kv        ports.KV
	telemetry *telemetry.Provider
}

// Open wires the application from cfg. Logs go to logOut.
// The caller must Close the runtime.
func Open(ctx context.Context, cfg *config.Config, build handlers.BuildInfo, logOut io.Writer) (*Runtime, error) {
	// 1. Logging
	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, logOut)
	logging.SetDefault(logger)

	rt := &Runtime{
		Config:    cfg,
		Logger:    logger,
		Health:    ports.NewHealthRegistry(),
		Metrics:   metrics.New(),
		BuildInfo: build,
	}

	// 2. Telemetry (noop if disabled)
	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	rt.telemetry = tel

	// 3. Storage
	kv, err := storage.OpenKV(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	rt.kv = kv

	if checker, ok := kv.(ports.HealthChecker); ok {
		if err := rt.Health.Register(checker); err != nil {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("registering storage health check: %w", err)
		}
	}

	// 4. Remote API (ACL over the instrumented client)
	var remote ports.RemoteQuotes

	if cfg.Remote.Enabled {
		client, err := newClient(cfg, logger)
		if err != nil {
			_ = rt.Close(ctx)
			return nil, err
		}

		rt.Remote, err = acl.NewRemoteQuoteClient(acl.RemoteQuoteClientConfig{
			Client:    client,
			Path:      cfg.Remote.Path,
			PageSize:  cfg.Remote.PageSize,
			TitlePath: cfg.Remote.TitlePath,
			IDPath:    cfg.Remote.IDPath,
			Category:  cfg.Remote.Category,
			Logger:    logger,
		})
		if err != nil {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("creating remote quote client: %w", err)
		}

		if err := rt.Health.Register(client); err != nil {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("registering remote health check: %w", err)
		}

		remote = rt.Remote
	}

	// 5. Application
	flagSet := flags.NewStatic(flags.StaticConfig{Values: cfg.Flags, Logger: logger})
	logger.DebugContext(ctx, "feature flags loaded", slog.Any("flags", flagSet.All()))

	rt.Controller = app.NewQuoteController(app.ControllerConfig{
		Store:     storage.New(storage.Config{KV: kv, Logger: logger}),
		Remote:    remote,
		Flags:     flagSet,
		Metrics:   rt.Metrics,
		PushOnAdd: cfg.Sync.PushOnAdd,
		Logger:    logger,
	})

	if err := rt.Controller.Init(ctx); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("loading quotes: %w", err)
	}

	return rt, nil
}

func newClient(cfg *config.Config, logger *slog.Logger) (*clients.Client, error) {
	client, err := clients.New(&clients.Config{
		BaseURL:     cfg.Remote.BaseURL,
		ServiceName: cfg.Remote.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}

	return client, nil
}

// Close releases storage and flushes telemetry.
func (rt *Runtime) Close(ctx context.Context) error {
	var errs []error

	if rt.kv != nil {
		if err := rt.kv.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing storage: %w", err))
		}
	}

	if rt.telemetry != nil {
		if err := rt.telemetry.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("telemetry shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}
