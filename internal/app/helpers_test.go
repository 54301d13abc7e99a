package app

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/storage"
	"github.com/jsamuelsen/quotekeeper/internal/adapters/storage/memory"
	"github.com/jsamuelsen/quotekeeper/internal/platform/metrics"
	"github.com/jsamuelsen/quotekeeper/internal/ports"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingRecorder implements Recorder for assertions.
type countingRecorder struct {
	syncs        atomic.Int64
	skippedSyncs atomic.Int64
	failedSyncs  atomic.Int64
	pushed       atomic.Int64
	ticksSkipped atomic.Int64
	size         atomic.Int64
}

func (r *countingRecorder) SyncCompleted(result string, _ time.Duration, _, _ int) {
	r.syncs.Add(1)

	switch result {
	case metrics.ResultSkipped:
		r.skippedSyncs.Add(1)
	case metrics.ResultError:
		r.failedSyncs.Add(1)
	}
}

func (r *countingRecorder) QuotePushed()         { r.pushed.Add(1) }
func (r *countingRecorder) TickSkipped()         { r.ticksSkipped.Add(1) }
func (r *countingRecorder) CollectionSize(n int) { r.size.Store(int64(n)) }

// testEnv bundles a controller with the KV it persists to.
type testEnv struct {
	kv      *memory.KV
	store   *storage.Store
	metrics *countingRecorder
	ctrl    *QuoteController
}

// newTestEnv builds an initialized controller over an in-memory store.
// cfg.Store, cfg.Metrics and cfg.Logger are filled in.
func newTestEnv(t *testing.T, cfg ControllerConfig) *testEnv {
	t.Helper()

	kv := memory.New()

	return reopen(t, kv, cfg)
}

// reopen builds a new controller over an existing KV, like a restart.
func reopen(t *testing.T, kv *memory.KV, cfg ControllerConfig) *testEnv {
	t.Helper()

	env := &testEnv{
		kv:      kv,
		store:   storage.New(storage.Config{KV: kv, Logger: discardLogger()}),
		metrics: &countingRecorder{},
	}

	cfg.Store = env.store
	cfg.Metrics = env.metrics
	cfg.Logger = discardLogger()

	env.ctrl = NewQuoteController(cfg)
	require.NoError(t, env.ctrl.Init(context.Background()))

	return env
}

// first returns an Intn that always picks index 0.
func first(int) int { return 0 }

var _ ports.QuoteStore = (*storage.Store)(nil)
