package app

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
	"github.com/jsamuelsen/quotekeeper/internal/mocks"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category string
		want     domain.Quote
		wantErr  bool
	}{
		{
			name:     "trims text and category",
			text:     "  Keep it simple.  ",
			category: " Craft ",
			want:     domain.Quote{Text: "Keep it simple.", Category: "Craft"},
		},
		{
			name: "blank category becomes General",
			text: "Ship it.",
			want: domain.Quote{Text: "Ship it.", Category: domain.DefaultCategory},
		},
		{
			name:     "blank text is rejected",
			text:     " \t ",
			category: "Craft",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			env := newTestEnv(t, ControllerConfig{})
			before := env.ctrl.All()

			got, err := env.ctrl.Add(ctx, tt.text, tt.category)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))

				step, ok := GetExecutionStep(err)
				require.True(t, ok)
				assert.Equal(t, StepValidate, step)
				assert.Equal(t, before, env.ctrl.All())

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)

			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(domain.Quote{}, "ID")); diff != "" {
				t.Errorf("Add() mismatch (-want +got):\n%s", diff)
			}

			all := env.ctrl.All()
			require.Len(t, all, len(before)+1)
			assert.Equal(t, got, all[len(all)-1])

			stored, err := env.store.LoadQuotes(ctx)
			require.NoError(t, err)
			assert.Equal(t, all, stored)
		})
	}
}

func TestAdd_GeneralCategoryListedOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, ControllerConfig{})

	_, err := env.ctrl.Add(ctx, "Test", "")
	require.NoError(t, err)

	_, err = env.ctrl.Add(ctx, "Another test", " General ")
	require.NoError(t, err)

	categories := env.ctrl.Categories()
	count := 0

	for _, c := range categories {
		if c == domain.DefaultCategory {
			count++
		}
	}

	assert.Equal(t, 1, count, "categories: %v", categories)
	assert.Len(t, env.ctrl.All(), len(domain.DefaultQuotes())+2)
}

func TestAdd_SaveFailureLeavesCollection(t *testing.T) {
	ctx := context.Background()
	diskErr := errors.New("disk full")

	store := mocks.NewMockQuoteStore(t)
	store.EXPECT().LoadQuotes(mock.Anything).Return(domain.DefaultQuotes(), nil)
	store.EXPECT().LoadFilter(mock.Anything).Return(domain.FilterAll, nil)
	store.EXPECT().LoadLastShown(mock.Anything).Return("", domain.ErrStorageAbsent)
	store.EXPECT().SaveQuotes(mock.Anything, mock.Anything).Return(diskErr)

	ctrl := NewQuoteController(ControllerConfig{Store: store, Logger: discardLogger()})
	require.NoError(t, ctrl.Init(ctx))

	_, err := ctrl.Add(ctx, "Lost words.", "")

	require.ErrorIs(t, err, diskErr)

	step, ok := GetExecutionStep(err)
	require.True(t, ok)
	assert.Equal(t, StepArchive, step)
	assert.Equal(t, domain.DefaultQuotes(), ctrl.All())
}

func TestAdd_PushOnAdd(t *testing.T) {
	ctx := context.Background()

	remote := mocks.NewMockRemoteQuotes(t)
	remote.EXPECT().Push(mock.Anything, mock.MatchedBy(func(q domain.Quote) bool {
		return q.Text == "Push me." && q.Category == domain.DefaultCategory
	})).Return(nil).Once()

	env := newTestEnv(t, ControllerConfig{Remote: remote, PushOnAdd: true})

	got, err := env.ctrl.Add(ctx, "Push me.", "")

	require.NoError(t, err)
	assert.True(t, got.Pushed)
	assert.Equal(t, int64(1), env.metrics.pushed.Load())

	stored, err := env.store.LoadQuotes(ctx)
	require.NoError(t, err)
	assert.True(t, stored[len(stored)-1].Pushed)
}

func TestAdd_PushFailureKeepsQuote(t *testing.T) {
	ctx := context.Background()

	remote := mocks.NewMockRemoteQuotes(t)
	remote.EXPECT().Push(mock.Anything, mock.Anything).
		Return(domain.NewNetworkError("placeholder-api", "push", errors.New("connection refused")))

	env := newTestEnv(t, ControllerConfig{Remote: remote, PushOnAdd: true})

	got, err := env.ctrl.Add(ctx, "Offline thought.", "Notes")

	require.NoError(t, err)
	assert.False(t, got.Pushed)
	assert.True(t, env.ctrl.All().HasID(got.ID))
}

func TestAdd_NoPushWhenDisabled(t *testing.T) {
	remote := mocks.NewMockRemoteQuotes(t)
	env := newTestEnv(t, ControllerConfig{Remote: remote})

	got, err := env.ctrl.Add(context.Background(), "Local only.", "")

	require.NoError(t, err)
	assert.False(t, got.Pushed)
	remote.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, ControllerConfig{})
	defaults := domain.DefaultQuotes()

	payload := `[
		{"id": "x-1", "text": "Imported one", "category": "Imported"},
		{"text": "Imported without id", "category": "Imported"},
		{"id": "` + defaults[0].ID + `", "text": "Colliding id", "category": " Spaced "}
	]`

	n, err := env.ctrl.Import(ctx, "backup.json", strings.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all := env.ctrl.All()
	require.Len(t, all, len(defaults)+3)

	imported := all[len(defaults):]
	assert.Equal(t, "x-1", imported[0].ID)
	assert.NotEmpty(t, imported[1].ID)
	assert.NotEqual(t, defaults[0].ID, imported[2].ID)
	assert.Equal(t, " Spaced ", imported[2].Category)

	ids := make(map[string]struct{}, len(all))
	for _, q := range all {
		ids[q.ID] = struct{}{}
	}

	assert.Len(t, ids, len(all), "ids must stay unique")

	stored, err := env.store.LoadQuotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, stored)
}

func TestImport_InvalidJSON(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		payload    string
		wantSource string
	}{
		{name: "truncated", source: "backup.json", payload: `[{"text": "x"`, wantSource: "backup.json"},
		{name: "not an array", source: "backup.json", payload: `{"text": "x"}`, wantSource: "backup.json"},
		{name: "trailing data", source: "backup.json", payload: `[{"text":"a","category":"b"}] this is not json`, wantSource: "backup.json"},
		{name: "two documents", source: "backup.json", payload: `[] []`, wantSource: "backup.json"},
		{name: "default source name", payload: `nope`, wantSource: DefaultExportName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, ControllerConfig{})

			n, err := env.ctrl.Import(context.Background(), tt.source, strings.NewReader(tt.payload))

			require.Error(t, err)
			assert.Zero(t, n)
			assert.True(t, domain.IsParse(err))

			var parseErr *domain.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantSource, parseErr.Source)
			assert.Equal(t, domain.DefaultQuotes(), env.ctrl.All())
		})
	}
}

func TestExport_Golden(t *testing.T) {
	env := newTestEnv(t, ControllerConfig{})

	data, err := env.ctrl.Export()
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "export_defaults", data)
}

func TestExport_ImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestEnv(t, ControllerConfig{})

	_, err := src.ctrl.Add(ctx, `Quotes "inside" & <brackets>`, "Edge")
	require.NoError(t, err)

	data, err := src.ctrl.Export()
	require.NoError(t, err)
	assert.Contains(t, string(data), "<brackets>")

	var decoded domain.Collection
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, src.ctrl.All(), decoded)

	dst := newTestEnv(t, ControllerConfig{})
	require.NoError(t, dst.store.SaveQuotes(ctx, domain.Collection{}))

	empty := reopen(t, dst.kv, ControllerConfig{})

	n, err := empty.ctrl.Import(ctx, "", strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, len(decoded), n)
	assert.Equal(t, decoded, empty.ctrl.All())
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, ControllerConfig{Intn: first})

	_, err := env.ctrl.Add(ctx, "Temporary.", "Scratch")
	require.NoError(t, err)
	require.NoError(t, env.ctrl.SelectCategory(ctx, "Scratch"))

	_, ok := env.ctrl.ShowRandom(ctx)
	require.True(t, ok)

	require.NoError(t, env.ctrl.Reset(ctx))

	assert.Equal(t, domain.DefaultQuotes(), env.ctrl.All())
	assert.Equal(t, domain.FilterAll, env.ctrl.Filter())

	_, ok = env.ctrl.LastShown()
	assert.False(t, ok)

	restarted := reopen(t, env.kv, ControllerConfig{})
	assert.Equal(t, domain.DefaultQuotes(), restarted.ctrl.All())
	assert.Equal(t, domain.FilterAll, restarted.ctrl.Filter())
}
