// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrStorageAbsent, ErrNetwork, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// Slot keys used by QuoteStore implementations.
const (
	SlotQuotes     = "quotes"
	SlotLastFilter = "last_filter"
	SlotLastQuote  = "last_quote"
)

// KV is a string-keyed, string-valued durable store.
//
// Example usage:
//
//	v, err := kv.Get(ctx, "quotes")
//	if domain.IsStorageAbsent(err) {
//	    // first run
//	}
type KV interface {
	// Get returns the value stored under key.
	// Returns domain.ErrStorageAbsent if the key has never been written.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}

// QuoteStore persists the quote collection and the view state next to it.
type QuoteStore interface {
	// SaveQuotes replaces the stored collection.
	SaveQuotes(ctx context.Context, quotes domain.Collection) error

	// LoadQuotes returns the stored collection.
	// Returns domain.ErrStorageAbsent on first run and a
	// *domain.StorageCorruptError when the stored value cannot be decoded.
	LoadQuotes(ctx context.Context) (domain.Collection, error)

	// SaveFilter stores the selected category.
	SaveFilter(ctx context.Context, filter string) error

	// LoadFilter returns the stored category, or domain.FilterAll when absent.
	LoadFilter(ctx context.Context) (string, error)

	// SaveLastShown stores the id of the last displayed quote.
	SaveLastShown(ctx context.Context, id string) error

	// LoadLastShown returns the id of the last displayed quote.
	// Returns domain.ErrStorageAbsent when nothing was shown yet.
	LoadLastShown(ctx context.Context) (string, error)

	// Clear removes every slot.
	Clear(ctx context.Context) error
}

// RemoteQuotes is the remote placeholder API the reconciler talks to.
// Implementations translate transport failures into domain.NetworkError,
// domain.ServerError or domain.DecodeError.
type RemoteQuotes interface {
	// FetchPage returns the fixed page of remote records mapped to quotes.
	FetchPage(ctx context.Context) (domain.Collection, error)

	// Push writes a single quote to the remote API.
	Push(ctx context.Context, quote domain.Quote) error
}
