package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotekeeper/internal/app"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// exportResult is the JSON payload of export.
type exportResult struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func newExportCommand(opts *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole collection to a JSON file",
		Long:  `Write the whole collection to a JSON file. --out - writes to standard output.`,
		Args:  usage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(_ context.Context, rt *Runtime, p *Printer) error {
				data, err := rt.Controller.Export()
				if err != nil {
					return err
				}

				if out == "-" {
					_, err := p.Writer.Write(append(data, '\n'))
					return err
				}

				if err := os.WriteFile(out, data, 0o600); err != nil {
					return fmt.Errorf("writing export: %w", err)
				}

				n := len(rt.Controller.All())

				return p.Success(exportResult{Path: out, Count: n},
					fmt.Sprintf("Exported %d quote(s) to %s.\n", n, out))
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", app.DefaultExportName, "output file")

	return cmd
}

// importResult is the JSON payload of import.
type importResult struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

func newImportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append the quotes of an exported JSON file",
		Args:  usage(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "opening import file", err)
			}
			defer f.Close()

			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime, p *Printer) error {
				n, err := rt.Controller.Import(ctx, filepath.Base(args[0]), f)
				if err != nil {
					return err
				}

				total := len(rt.Controller.All())

				return p.Success(importResult{Imported: n, Total: total},
					fmt.Sprintf("Imported %d quote(s), %d in total.\n", n, total))
			})
		},
	}
}

func newResetCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete everything and restore the default quotes",
		Args:  usage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				if opts.Format == FormatJSON {
					return NewExitError(ExitCommandError, "reset needs --yes with --format json")
				}

				if !confirm(cmd, "Reset all quotes to the defaults? [y/N] ") {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime, p *Printer) error {
				if err := rt.Controller.Reset(ctx); err != nil {
					return err
				}

				n := len(rt.Controller.All())

				return p.Success(listResult{Filter: domain.FilterAll, Count: n, Quotes: rt.Controller.All()},
					fmt.Sprintf("Restored %d default quote(s).\n", n))
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

// confirm asks prompt on the command's streams. Anything but y or yes,
// including end of input, declines.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes"
}
