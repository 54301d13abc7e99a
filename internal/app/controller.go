// Package app holds the quote controller: the single owner of the quote
// collection, the selected filter and the last shown quote. The CLI and the
// HTTP API both drive it; neither touches storage or the remote API directly.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
	"github.com/jsamuelsen/quotekeeper/internal/ports"
)

// ErrRemoteDisabled is returned by remote operations when no remote API is configured.
var ErrRemoteDisabled = fmt.Errorf("remote API is disabled: %w", domain.ErrUnavailable)

// Recorder receives controller metrics. platform/metrics implements it.
type Recorder interface {
	SyncCompleted(result string, d time.Duration, pushed, merged int)
	QuotePushed()
	TickSkipped()
	CollectionSize(n int)
}

type nopRecorder struct{}

func (nopRecorder) SyncCompleted(string, time.Duration, int, int) {}
func (nopRecorder) QuotePushed()                                  {}
func (nopRecorder) TickSkipped()                                  {}
func (nopRecorder) CollectionSize(int)                            {}

// ControllerConfig wires the controller's dependencies.
type ControllerConfig struct {
	// Store is required.
	Store ports.QuoteStore

	// Remote is optional; remote operations return ErrRemoteDisabled without it.
	Remote ports.RemoteQuotes

	// Flags is optional; every flag evaluates to its default without it.
	Flags ports.FeatureFlags

	// Metrics is optional.
	Metrics Recorder

	// PushOnAdd pushes every added quote to the remote API.
	PushOnAdd bool

	// Intn picks the random index for ShowRandom. Defaults to math/rand/v2.IntN.
	Intn func(n int) int

	Logger *slog.Logger
}

// QuoteController is safe for concurrent use. State lives behind mu; network
// calls are made without holding it. syncMu serializes remote writes.
type QuoteController struct {
	store     ports.QuoteStore
	remote    ports.RemoteQuotes
	flags     ports.FeatureFlags
	metrics   Recorder
	pushOnAdd bool
	intn      func(n int) int
	logger    *slog.Logger
	executor  *Executor

	mu          sync.RWMutex
	quotes      domain.Collection
	filter      string
	lastShownID string

	syncMu sync.Mutex
}

// NewQuoteController creates a controller. Call Init before use.
// Panics if Store is nil.
func NewQuoteController(cfg ControllerConfig) *QuoteController {
	if cfg.Store == nil {
		panic("QuoteController: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.QuoteController"))

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = nopRecorder{}
	}

	intn := cfg.Intn
	if intn == nil {
		intn = rand.IntN
	}

	return &QuoteController{
		store:     cfg.Store,
		remote:    cfg.Remote,
		flags:     cfg.Flags,
		metrics:   metrics,
		pushOnAdd: cfg.PushOnAdd,
		intn:      intn,
		logger:    logger,
		executor:  NewExecutor(logger),
		quotes:    domain.Collection{},
		filter:    domain.FilterAll,
	}
}

// Init loads the stored state. A missing or corrupt collection is replaced
// by the default quotes, which are persisted immediately.
func (c *QuoteController) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	quotes, err := c.store.LoadQuotes(ctx)

	switch {
	case err == nil:
	case domain.IsStorageAbsent(err):
		c.logger.InfoContext(ctx, "no stored quotes, seeding defaults")

		quotes, err = c.seedDefaults(ctx)
	case domain.IsStorageCorrupt(err):
		c.logger.WarnContext(ctx, "stored quotes are corrupt, reseeding defaults", slog.Any("error", err))

		quotes, err = c.seedDefaults(ctx)
	}

	if err != nil {
		return fmt.Errorf("loading quotes: %w", err)
	}

	filter, err := c.store.LoadFilter(ctx)
	if err != nil {
		return fmt.Errorf("loading filter: %w", err)
	}

	lastShown, err := c.store.LoadLastShown(ctx)
	if err != nil && !domain.IsStorageAbsent(err) {
		return fmt.Errorf("loading last shown quote: %w", err)
	}

	c.quotes = quotes
	c.filter = filter
	c.lastShownID = lastShown
	c.metrics.CollectionSize(len(quotes))

	c.logger.DebugContext(ctx, "state loaded",
		slog.Int("quotes", len(quotes)),
		slog.String("filter", filter),
	)

	return nil
}

// seedDefaults must be called with mu held.
func (c *QuoteController) seedDefaults(ctx context.Context) (domain.Collection, error) {
	quotes := domain.DefaultQuotes()
	if err := c.store.SaveQuotes(ctx, quotes); err != nil {
		return nil, fmt.Errorf("saving default quotes: %w", err)
	}

	return quotes, nil
}

// ShowRandom picks a random quote from the filtered view and remembers it as
// the last shown quote. ok is false when the view is empty.
func (c *QuoteController) ShowRandom(ctx context.Context) (domain.Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	quote, ok := domain.PickRandom(domain.ApplyFilter(c.quotes, c.filter), c.intn)
	if !ok {
		return domain.Quote{}, false
	}

	c.lastShownID = quote.ID

	if err := c.store.SaveLastShown(ctx, quote.ID); err != nil {
		c.logger.WarnContext(ctx, "saving last shown quote failed", slog.Any("error", err))
	}

	return quote, true
}

// LastShown returns the quote shown most recently, across restarts.
func (c *QuoteController) LastShown() (domain.Quote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.quotes.IndexOf(c.lastShownID)
	if c.lastShownID == "" || i < 0 {
		return domain.Quote{}, false
	}

	return c.quotes[i], true
}

// SelectCategory changes and persists the filter. Any value is accepted;
// an unknown category simply yields an empty view.
func (c *QuoteController) SelectCategory(ctx context.Context, category string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.SaveFilter(ctx, category); err != nil {
		return fmt.Errorf("saving filter: %w", err)
	}

	c.filter = category

	return nil
}

// Filter returns the selected category or domain.FilterAll.
func (c *QuoteController) Filter() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.filter
}

// Categories returns the category index of the whole collection.
func (c *QuoteController) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.DeriveCategories(c.quotes)
}

// View returns the quotes matching the selected filter.
func (c *QuoteController) View() domain.Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.ApplyFilter(c.quotes, c.filter)
}

// All returns a copy of the whole collection.
func (c *QuoteController) All() domain.Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.quotes.Clone()
}

// publish replaces the in-memory collection. Must be called with mu held,
// after the collection was persisted.
func (c *QuoteController) publish(quotes domain.Collection) {
	c.quotes = quotes
	c.metrics.CollectionSize(len(quotes))
}
