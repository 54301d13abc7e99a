package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
	"github.com/jsamuelsen/quotekeeper/internal/ports"
)

func backends(t *testing.T) map[string]ports.KV {
	t.Helper()

	sqliteKV, err := OpenKV(DriverSQLite, filepath.Join(t.TempDir(), "quotes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteKV.Close() })

	memKV, err := OpenKV(DriverMemory, "")
	require.NoError(t, err)

	return map[string]ports.KV{DriverSQLite: sqliteKV, DriverMemory: memKV}
}

func TestOpenKV_UnknownDriver(t *testing.T) {
	_, err := OpenKV("redis", "")
	require.ErrorIs(t, err, ErrUnknownDriver)
}

func TestStore_Quotes(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := New(Config{KV: kv})
			ctx := context.Background()

			_, err := store.LoadQuotes(ctx)
			require.True(t, domain.IsStorageAbsent(err))

			want := domain.DefaultQuotes()
			want[2].Pushed = true
			require.NoError(t, store.SaveQuotes(ctx, want))

			got, err := store.LoadQuotes(ctx)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("loaded quotes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStore_SaveEmptyCollection(t *testing.T) {
	kv, err := OpenKV(DriverMemory, "")
	require.NoError(t, err)
	store := New(Config{KV: kv})
	ctx := context.Background()

	require.NoError(t, store.SaveQuotes(ctx, nil))

	raw, err := kv.Get(ctx, ports.SlotQuotes)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	got, err := store.LoadQuotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_CorruptQuotes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{{{"},
		{name: "wrong shape", raw: `{"text":"a"}`},
		{name: "null", raw: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := OpenKV(DriverMemory, "")
			require.NoError(t, err)
			require.NoError(t, kv.Set(context.Background(), ports.SlotQuotes, tt.raw))

			_, err = New(Config{KV: kv}).LoadQuotes(context.Background())

			require.Error(t, err)
			assert.True(t, domain.IsStorageCorrupt(err))
			assert.False(t, domain.IsStorageAbsent(err))

			var corrupt *domain.StorageCorruptError
			require.ErrorAs(t, err, &corrupt)
			assert.Equal(t, ports.SlotQuotes, corrupt.Key)
		})
	}
}

func TestStore_Filter(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := New(Config{KV: kv})
			ctx := context.Background()

			got, err := store.LoadFilter(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.FilterAll, got)

			require.NoError(t, store.SaveFilter(ctx, " Hope"))
			got, err = store.LoadFilter(ctx)
			require.NoError(t, err)
			assert.Equal(t, " Hope", got, "filter is stored verbatim")

			require.NoError(t, store.SaveFilter(ctx, domain.FilterAll))
			_, err = kv.Get(ctx, ports.SlotLastFilter)
			assert.True(t, domain.IsStorageAbsent(err), "selecting all removes the slot")

			got, err = store.LoadFilter(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.FilterAll, got)
		})
	}
}

func TestStore_LastShownAndClear(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := New(Config{KV: kv})
			ctx := context.Background()

			_, err := store.LoadLastShown(ctx)
			require.True(t, domain.IsStorageAbsent(err))

			require.NoError(t, store.SaveLastShown(ctx, "abc"))
			require.NoError(t, store.SaveFilter(ctx, "Life"))
			require.NoError(t, store.SaveQuotes(ctx, domain.DefaultQuotes()))

			id, err := store.LoadLastShown(ctx)
			require.NoError(t, err)
			assert.Equal(t, "abc", id)

			require.NoError(t, store.Clear(ctx))

			_, err = store.LoadQuotes(ctx)
			assert.True(t, domain.IsStorageAbsent(err))
			filter, err := store.LoadFilter(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.FilterAll, filter)
		})
	}
}
