// Package storage persists the quote collection and view state in
// string-keyed slots on top of a ports.KV backend.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/storage/memory"
	"github.com/jsamuelsen/quotekeeper/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
	"github.com/jsamuelsen/quotekeeper/internal/ports"
)

// Supported backend drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// ErrUnknownDriver is returned by OpenKV for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown storage driver")

// OpenKV opens the backend selected by driver.
func OpenKV(driver, path string) (ports.KV, error) {
	switch driver {
	case DriverSQLite:
		return sqlite.Open(path)
	case DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// Config holds store dependencies.
type Config struct {
	KV     ports.KV
	Logger *slog.Logger
}

// Store implements ports.QuoteStore.
type Store struct {
	kv     ports.KV
	logger *slog.Logger
}

// New creates a Store over cfg.KV.
func New(cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{kv: cfg.KV, logger: logger}
}

// SaveQuotes serializes the whole collection into the quotes slot.
func (s *Store) SaveQuotes(ctx context.Context, quotes domain.Collection) error {
	if quotes == nil {
		quotes = domain.Collection{}
	}

	data, err := json.Marshal(quotes)
	if err != nil {
		return fmt.Errorf("encoding quotes: %w", err)
	}

	if err := s.kv.Set(ctx, ports.SlotQuotes, string(data)); err != nil {
		return fmt.Errorf("saving quotes: %w", err)
	}

	s.logger.DebugContext(ctx, "quotes saved", slog.Int("count", len(quotes)))

	return nil
}

// LoadQuotes deserializes the quotes slot.
func (s *Store) LoadQuotes(ctx context.Context) (domain.Collection, error) {
	raw, err := s.kv.Get(ctx, ports.SlotQuotes)
	if err != nil {
		return nil, err
	}

	var quotes domain.Collection
	if err := json.Unmarshal([]byte(raw), &quotes); err != nil {
		return nil, domain.NewStorageCorruptError(ports.SlotQuotes, err)
	}

	if quotes == nil {
		return nil, domain.NewStorageCorruptError(ports.SlotQuotes, errors.New("null collection"))
	}

	return quotes, nil
}

// SaveFilter stores the filter as a plain string. Selecting domain.FilterAll
// removes the slot, which LoadFilter reads back as domain.FilterAll.
func (s *Store) SaveFilter(ctx context.Context, filter string) error {
	if filter == domain.FilterAll {
		if err := s.kv.Delete(ctx, ports.SlotLastFilter); err != nil {
			return fmt.Errorf("clearing filter: %w", err)
		}

		return nil
	}

	if err := s.kv.Set(ctx, ports.SlotLastFilter, filter); err != nil {
		return fmt.Errorf("saving filter: %w", err)
	}

	return nil
}

// LoadFilter returns the stored filter or domain.FilterAll.
func (s *Store) LoadFilter(ctx context.Context) (string, error) {
	v, err := s.kv.Get(ctx, ports.SlotLastFilter)
	if domain.IsStorageAbsent(err) {
		return domain.FilterAll, nil
	}

	if err != nil {
		return "", fmt.Errorf("loading filter: %w", err)
	}

	return v, nil
}

// SaveLastShown stores the id of the last displayed quote.
func (s *Store) SaveLastShown(ctx context.Context, id string) error {
	if err := s.kv.Set(ctx, ports.SlotLastQuote, id); err != nil {
		return fmt.Errorf("saving last shown: %w", err)
	}

	return nil
}

// LoadLastShown returns the id of the last displayed quote.
func (s *Store) LoadLastShown(ctx context.Context) (string, error) {
	return s.kv.Get(ctx, ports.SlotLastQuote)
}

// Clear wipes every slot.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}

	s.logger.InfoContext(ctx, "store cleared")

	return nil
}
