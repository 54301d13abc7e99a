// Package cli implements the quotekeeper command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotekeeper/internal/platform/config"
)

// RootOptions holds global flags and the streams shared by all commands.
type RootOptions struct {
	Profile   string
	ConfigDir string
	Format    string

	BuildInfo handlers.BuildInfo

	// Styled enables terminal styling of text output.
	Styled bool
}

// NewRootCommand creates the root command.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotekeeper",
		Short: "Keep a collection of quotes and sync it with a remote API",
		Long: `quotekeeper keeps a local collection of categorized quotes, shows a random
one from the selected category, and reconciles the collection with a remote
placeholder API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "", err)
	})

	cmd.PersistentFlags().StringVar(&opts.Profile, "config-profile", opts.Profile,
		"configuration profile, loads <config-dir>/<profile>.yaml over base.yaml")
	cmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", opts.ConfigDir, "configuration directory")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", opts.Format, "output format (text|json)")

	cmd.AddCommand(
		newShowCommand(opts),
		newListCommand(opts),
		newCategoriesCommand(opts),
		newAddCommand(opts),
		newFilterCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
		newResetCommand(opts),
		newPullCommand(opts),
		newSyncCommand(opts),
		newServeCommand(opts),
	)

	return cmd
}

// DefaultOptions returns the options used by the binary. The profile
// defaults to APP_ENVIRONMENT, then "local".
func DefaultOptions(build handlers.BuildInfo) *RootOptions {
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	return &RootOptions{
		Profile:   profile,
		ConfigDir: config.DefaultConfigDir,
		Format:    FormatText,
		BuildInfo: build,
		Styled:    isTerminal(os.Stdout),
	}
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, opts *RootOptions, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand(opts)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return ExitSuccess
	}

	// cobra reports an unknown command against the root.
	var exitErr *ExitError
	if !errors.As(err, &exitErr) && cmd == root {
		err = WrapExitError(ExitCommandError, "", err)
	}

	opts.printer(root).Error(err)

	return GetExitCode(err)
}

// usage marks positional argument errors as command errors.
func usage(args cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := args(cmd, a); err != nil {
			return WrapExitError(ExitCommandError, "", err)
		}

		return nil
	}
}

func (o *RootOptions) printer(cmd *cobra.Command) *Printer {
	return &Printer{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Styled:    o.Styled,
	}
}

// withRuntime loads the configuration, opens the runtime for the duration
// of fn and closes it afterwards.
func (o *RootOptions) withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *Runtime, p *Printer) error) error {
	ctx := cmd.Context()

	cfg, err := config.LoadFrom(o.ConfigDir, o.Profile)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading config", err)
	}

	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid config", err)
	}

	rt, err := Open(ctx, cfg, o.BuildInfo, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	runErr := fn(ctx, rt, o.printer(cmd))

	if err := rt.Close(context.WithoutCancel(ctx)); err != nil {
		rt.Logger.Warn("closing runtime failed", "error", err)
	}

	return runErr
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
