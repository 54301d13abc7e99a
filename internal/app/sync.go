package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen/quotekeeper/internal/app/cycle"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
	"github.com/jsamuelsen/quotekeeper/internal/platform/logging"
	"github.com/jsamuelsen/quotekeeper/internal/platform/metrics"
	"github.com/jsamuelsen/quotekeeper/internal/platform/telemetry"
	"github.com/jsamuelsen/quotekeeper/internal/ports"
)

// SyncReport summarizes one reconciliation run.
type SyncReport struct {
	RunID    string        `json:"run_id,omitempty"`
	Skipped  bool          `json:"skipped"`
	Fetched  int           `json:"fetched"`
	Pushed   int           `json:"pushed"`
	Merged   int           `json:"merged"`
	Duration time.Duration `json:"duration"`
}

// Pull fetches the remote page and appends the records not already present
// by id or text. It returns the appended quotes.
func (c *QuoteController) Pull(ctx context.Context) (domain.Collection, error) {
	if c.remote == nil {
		return nil, ErrRemoteDisabled
	}

	page, err := c.remote.FetchPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("pulling remote quotes: %w", err)
	}

	added, err := c.merge(ctx, page)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "pulled remote quotes",
		slog.Int("fetched", len(page)),
		slog.Int("added", len(added)),
	)

	return added, nil
}

// Push writes one quote to the remote API and marks it pushed.
// It waits for a running sync to finish first.
func (c *QuoteController) Push(ctx context.Context, id string) (domain.Quote, error) {
	if c.remote == nil {
		return domain.Quote{}, ErrRemoteDisabled
	}

	c.syncMu.Lock()
	defer c.syncMu.Unlock()

	c.mu.RLock()
	i := c.quotes.IndexOf(id)

	var quote domain.Quote
	if i >= 0 {
		quote = c.quotes[i]
	}
	c.mu.RUnlock()

	if i < 0 {
		return domain.Quote{}, domain.NewNotFoundError("quote", id)
	}

	if err := c.pushOne(ctx, quote); err != nil {
		return domain.Quote{}, err
	}

	c.metrics.QuotePushed()
	quote.Pushed = true

	return quote, nil
}

// pushOne posts quote and persists its pushed marker. Callers hold syncMu.
func (c *QuoteController) pushOne(ctx context.Context, quote domain.Quote) error {
	if err := c.remote.Push(ctx, quote); err != nil {
		return fmt.Errorf("pushing quote %s: %w", quote.ID, err)
	}

	return c.markPushed(ctx, quote.ID)
}

func (c *QuoteController) markPushed(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.quotes.IndexOf(id)
	if i < 0 || c.quotes[i].Pushed {
		return nil
	}

	next := c.quotes.Clone()
	next[i].Pushed = true

	if err := c.store.SaveQuotes(ctx, next); err != nil {
		return fmt.Errorf("saving pushed marker: %w", err)
	}

	c.publish(next)

	return nil
}

// merge appends the unseen quotes of page and persists the collection.
func (c *QuoteController) merge(ctx context.Context, page domain.Collection) (domain.Collection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, added := domain.MergeRemote(c.quotes, page)
	if len(added) == 0 {
		return added, nil
	}

	if err := c.store.SaveQuotes(ctx, next); err != nil {
		return nil, fmt.Errorf("saving merged quotes: %w", err)
	}

	c.publish(next)

	return added, nil
}

// Sync fetches the remote page, pushes the local quotes that still need it
// one after another, then appends the unseen remote records. An overlapping
// call returns immediately with Skipped set. The first failure aborts the
// run; quotes pushed before it stay marked.
func (c *QuoteController) Sync(ctx context.Context) (SyncReport, error) {
	if c.remote == nil {
		return SyncReport{}, ErrRemoteDisabled
	}

	if !c.syncMu.TryLock() {
		c.logger.DebugContext(ctx, "sync already running, skipping")
		c.metrics.SyncCompleted(metrics.ResultSkipped, 0, 0, 0)

		return SyncReport{Skipped: true}, nil
	}
	defer c.syncMu.Unlock()

	start := time.Now()
	report := SyncReport{RunID: uuid.NewString()}

	ctx, span := telemetry.Tracer().Start(ctx, "quotes.sync")
	defer span.End()

	ctx = logging.WithSyncRun(ctx, report.RunID)
	logger := logging.FromContextOr(ctx, c.logger)

	err := c.runSync(ctx, &report)
	report.Duration = time.Since(start)

	span.SetAttributes(
		attribute.String("sync.run_id", report.RunID),
		attribute.Int("sync.fetched", report.Fetched),
		attribute.Int("sync.pushed", report.Pushed),
		attribute.Int("sync.merged", report.Merged),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sync failed")
		c.metrics.SyncCompleted(metrics.ResultError, report.Duration, report.Pushed, report.Merged)
		logger.WarnContext(ctx, "sync failed",
			slog.Int("pushed", report.Pushed),
			slog.Any("error", err),
		)

		return report, fmt.Errorf("sync: %w", err)
	}

	c.metrics.SyncCompleted(metrics.ResultOK, report.Duration, report.Pushed, report.Merged)
	logger.InfoContext(ctx, "sync completed",
		slog.Int("fetched", report.Fetched),
		slog.Int("pushed", report.Pushed),
		slog.Int("merged", report.Merged),
		slog.Duration("duration", report.Duration),
	)

	return report, nil
}

func (c *QuoteController) runSync(ctx context.Context, report *SyncReport) error {
	cy := cycle.New(ctx)

	page, err := cycle.Fetch(cy, cycle.KeyRemotePage, c.remote.FetchPage)
	if err != nil {
		return err
	}

	report.Fetched = len(page)

	tracked := true
	if c.flags != nil {
		tracked = c.flags.IsEnabled(ctx, ports.FlagTrackPushed, true)
	}

	for _, q := range PendingPush(c.All(), page, tracked) {
		if err := cy.AddAction(cycle.ActionFunc{
			Name: "push " + q.ID,
			Fn:   func(ctx context.Context) error { return c.pushOne(ctx, q) },
		}); err != nil {
			return err
		}
	}

	if staged := cy.Actions(); len(staged) > 0 {
		names := make([]string, len(staged))
		for i, a := range staged {
			names[i] = a.Description()
		}

		logging.FromContextOr(ctx, c.logger).DebugContext(ctx, "pushing pending quotes",
			slog.Int("count", len(names)),
			slog.Any("actions", names),
		)
	}

	report.Pushed, err = cy.Commit(ctx)
	if err != nil {
		return err
	}

	added, err := c.merge(ctx, page)
	if err != nil {
		return err
	}

	report.Merged = len(added)

	return nil
}

// PendingPush selects the local quotes a sync pushes.
// Tracked: every quote not yet marked pushed.
// Legacy: every quote whose text is missing from page, marked or not. This
// re-pushes the same quotes on every run once they scroll off the page.
func PendingPush(local, page domain.Collection, tracked bool) domain.Collection {
	pending := domain.Collection{}

	for _, q := range local {
		if tracked && !q.Pushed {
			pending = append(pending, q)
		}

		if !tracked && !page.HasText(q.Text) {
			pending = append(pending, q)
		}
	}

	return pending
}
