package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// quoteResult is the JSON payload of show and add.
type quoteResult struct {
	Quote   *domain.Quote `json:"quote"`
	Message string        `json:"message,omitempty"`
}

func newShowCommand(opts *RootOptions) *cobra.Command {
	var last bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a random quote from the selected category",
		Long: `Show a random quote from the selected category and remember it.
With --last, show the quote shown most recently instead.`,
		Args: usage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime, p *Printer) error {
				var (
					quote domain.Quote
					ok    bool
				)

				if last {
					quote, ok = rt.Controller.LastShown()
				} else {
					quote, ok = rt.Controller.ShowRandom(ctx)
				}

				if !ok {
					return p.Success(quoteResult{Message: domain.NoQuotesMessage}, domain.NoQuotesMessage+"\n")
				}

				if p.JSON() {
					return p.Success(quoteResult{Quote: &quote}, "")
				}

				rendered, err := renderQuote(quote, p.Styled)
				if err != nil {
					return err
				}

				return p.Success(nil, rendered)
			})
		},
	}

	cmd.Flags().BoolVar(&last, "last", false, "show the last displayed quote")

	return cmd
}

// listResult is the JSON payload of list.
type listResult struct {
	Filter string            `json:"filter"`
	Count  int               `json:"count"`
	Quotes domain.Collection `json:"quotes"`
}

func newListCommand(opts *RootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the quotes of the selected category",
		Args:  usage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(_ context.Context, rt *Runtime, p *Printer) error {
				filter, quotes := rt.Controller.Filter(), rt.Controller.View()
				if all {
					filter, quotes = domain.FilterAll, rt.Controller.All()
				}

				return p.Success(
					listResult{Filter: filter, Count: len(quotes), Quotes: quotes},
					renderList(p.Writer, filter, quotes),
				)
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "ignore the selected category")

	return cmd
}

// categoriesResult is the JSON payload of categories and filter.
type categoriesResult struct {
	Selected   string   `json:"selected"`
	Categories []string `json:"categories,omitempty"`
}

func newCategoriesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories, marking the selected one",
		Args:  usage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withRuntime(cmd, func(_ context.Context, rt *Runtime, p *Printer) error {
				selected, categories := rt.Controller.Filter(), rt.Controller.Categories()

				return p.Success(
					categoriesResult{Selected: selected, Categories: categories},
					renderCategories(p.Writer, selected, categories),
				)
			})
		},
	}
}

func newFilterCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "filter [category]",
		Short: "Print or change the selected category",
		Long: `Without an argument, print the selected category. With one, select it;
"all" selects every quote. An unknown category is accepted and shows no quotes.`,
		Args: usage(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime, p *Printer) error {
				if len(args) == 1 {
					if err := rt.Controller.SelectCategory(ctx, args[0]); err != nil {
						return err
					}
				}

				selected := rt.Controller.Filter()

				return p.Success(categoriesResult{Selected: selected}, selected+"\n")
			})
		},
	}
}

func newAddCommand(opts *RootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a quote",
		Long: `Add a quote. The arguments are joined with spaces. A blank category
becomes "` + domain.DefaultCategory + `".`,
		Args: usage(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withRuntime(cmd, func(ctx context.Context, rt *Runtime, p *Printer) error {
				quote, err := rt.Controller.Add(ctx, strings.Join(args, " "), category)
				if err != nil {
					return err
				}

				return p.Success(quoteResult{Quote: &quote},
					fmt.Sprintf("Added %s to %s.\n", shortID(quote.ID), quote.Category))
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category of the quote")

	return cmd
}
