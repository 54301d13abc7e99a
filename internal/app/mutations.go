package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// DefaultExportName is the file name used for exports and in import errors.
const DefaultExportName = "quotes.json"

type addInput struct {
	text     string
	category string
}

// Add appends a manually entered quote and persists the collection.
// Blank text is a *domain.ValidationError. When push-on-add is enabled the
// quote is then pushed; a push failure is logged and the add stands.
func (c *QuoteController) Add(ctx context.Context, text, category string) (domain.Quote, error) {
	quote, err := c.add(ctx, text, category)
	if err != nil {
		return domain.Quote{}, err
	}

	if c.pushOnAdd && c.remote != nil {
		pushed, err := c.Push(ctx, quote.ID)
		if err != nil {
			c.logger.WarnContext(ctx, "pushing added quote failed",
				slog.String("quote_id", quote.ID),
				slog.Any("error", err),
			)
		} else {
			quote = pushed
		}
	}

	return quote, nil
}

func (c *QuoteController) add(ctx context.Context, text, category string) (domain.Quote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Execute(ctx, c.executor, Operation[addInput, domain.Quote, domain.Collection, domain.Quote]{
		Name: "add_quote",
		Validate: func(_ context.Context, in addInput) error {
			if strings.TrimSpace(in.text) == "" {
				return domain.NewValidationError("text", "please enter a quote")
			}

			return nil
		},
		Perform: func(_ context.Context, in addInput) (domain.Quote, error) {
			return domain.NewQuote(in.text, in.category)
		},
		Verify: func(_ context.Context, _ addInput, quote domain.Quote) (domain.Collection, error) {
			for c.quotes.HasID(quote.ID) {
				quote.ID = domain.NewID()
			}

			return append(c.quotes.Clone(), quote), nil
		},
		Archive: func(ctx context.Context, _ addInput, next domain.Collection) error {
			if err := c.store.SaveQuotes(ctx, next); err != nil {
				return err
			}

			c.publish(next)

			return nil
		},
		Respond: func(_ context.Context, _ addInput, next domain.Collection) (domain.Quote, error) {
			return next[len(next)-1], nil
		},
	}, addInput{text: text, category: category})
}

type importInput struct {
	source string
	r      io.Reader
}

type importResult struct {
	next  domain.Collection
	added int
}

// Import appends every entry of a JSON array read from r and returns how
// many were added. Entries are taken as is; a missing id, or one that is
// already used, is replaced by a fresh one. Invalid JSON is a
// *domain.ParseError naming source and nothing is changed.
func (c *QuoteController) Import(ctx context.Context, source string, r io.Reader) (int, error) {
	if source == "" {
		source = DefaultExportName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return Execute(ctx, c.executor, Operation[importInput, domain.Collection, importResult, int]{
		Name: "import_quotes",
		Perform: func(_ context.Context, in importInput) (domain.Collection, error) {
			data, err := io.ReadAll(in.r)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", in.source, err)
			}

			var batch domain.Collection
			if err := json.Unmarshal(data, &batch); err != nil {
				return nil, domain.NewParseError(in.source, err)
			}

			return batch, nil
		},
		Verify: func(_ context.Context, _ importInput, batch domain.Collection) (importResult, error) {
			next := c.quotes.Clone()

			for _, q := range batch {
				for q.ID == "" || next.HasID(q.ID) {
					q.ID = domain.NewID()
				}

				next = append(next, q)
			}

			return importResult{next: next, added: len(batch)}, nil
		},
		Archive: func(ctx context.Context, _ importInput, res importResult) error {
			if err := c.store.SaveQuotes(ctx, res.next); err != nil {
				return err
			}

			c.publish(res.next)

			return nil
		},
		Respond: func(_ context.Context, _ importInput, res importResult) (int, error) {
			return res.added, nil
		},
	}, importInput{source: source, r: r})
}

// Export renders the whole collection as a JSON array indented with two spaces.
func (c *QuoteController) Export() ([]byte, error) {
	c.mu.RLock()
	quotes := c.quotes.Clone()
	c.mu.RUnlock()

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(quotes); err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Reset clears storage and restores the default quotes. The filter goes back
// to domain.FilterAll without being persisted.
func (c *QuoteController) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing storage: %w", err)
	}

	quotes, err := c.seedDefaults(ctx)
	if err != nil {
		return err
	}

	c.publish(quotes)
	c.filter = domain.FilterAll
	c.lastShownID = ""

	c.logger.InfoContext(ctx, "collection reset to defaults")

	return nil
}
