package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotekeeper/internal/adapters/storage"
	"github.com/jsamuelsen/quotekeeper/internal/adapters/storage/memory"
	"github.com/jsamuelsen/quotekeeper/internal/app"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
	"github.com/jsamuelsen/quotekeeper/internal/mocks"
	"github.com/jsamuelsen/quotekeeper/internal/ports"
)

// setupQuoteRouter returns an engine serving the quote routes under /api/v1,
// backed by a controller over an in-memory store seeded with the defaults.
// A nil remote disables the remote operations.
func setupQuoteRouter(t *testing.T, remote ports.RemoteQuotes) (*gin.Engine, *app.QuoteController) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := app.ControllerConfig{
		Store:  storage.New(storage.Config{KV: memory.New(), Logger: logger}),
		Intn:   func(int) int { return 0 },
		Logger: logger,
	}
	if remote != nil {
		cfg.Remote = remote
	}

	ctrl := app.NewQuoteController(cfg)
	require.NoError(t, ctrl.Init(context.Background()))

	engine := gin.New()
	NewQuoteHandler(ctrl).RegisterQuoteRoutes(engine.Group("/api/v1"))

	return engine, ctrl
}

func serve(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	engine, ctrl := setupQuoteRouter(t, nil)
	require.NoError(t, ctrl.SelectCategory(context.Background(), "Perseverance"))

	w := serve(engine, http.MethodGet, "/api/v1/quotes", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.QuoteListResponse](t, w)
	assert.Equal(t, "Perseverance", resp.Filter)
	assert.Equal(t, 2, resp.Count)

	w = serve(engine, http.MethodGet, "/api/v1/quotes?scope=all", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp = decode[dto.QuoteListResponse](t, w)
	assert.Equal(t, domain.FilterAll, resp.Filter)
	assert.Equal(t, len(domain.DefaultQuotes()), resp.Count)
}

func TestQuoteHandler_RandomAndLast(t *testing.T) {
	engine, _ := setupQuoteRouter(t, nil)

	w := serve(engine, http.MethodGet, "/api/v1/quotes/last", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.NoQuotesMessage, decode[dto.ErrorResponse](t, w).Error.Message)

	w = serve(engine, http.MethodGet, "/api/v1/quotes/random", "")
	require.Equal(t, http.StatusOK, w.Code)

	shown := decode[dto.QuoteResponse](t, w)
	assert.Equal(t, domain.DefaultQuotes()[0].Text, shown.Text)

	w = serve(engine, http.MethodGet, "/api/v1/quotes/last", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, shown, decode[dto.QuoteResponse](t, w))
}

func TestQuoteHandler_RandomEmptyView(t *testing.T) {
	engine, _ := setupQuoteRouter(t, nil)

	w := serve(engine, http.MethodPut, "/api/v1/filter", `{"category":"Nonexistent"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodGet, "/api/v1/quotes/random", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, dto.ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, domain.NoQuotesMessage, resp.Error.Message)
}

func TestQuoteHandler_AddQuote(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
		wantCategory   string
	}{
		{
			name:           "with category",
			body:           `{"text":"  Stay curious.  ","category":"Life"}`,
			expectedStatus: http.StatusCreated,
			wantCategory:   "Life",
		},
		{
			name:           "default category",
			body:           `{"text":"Stay curious."}`,
			expectedStatus: http.StatusCreated,
			wantCategory:   domain.DefaultCategory,
		},
		{
			name:           "blank text",
			body:           `{"text":"   "}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeValidation,
		},
		{
			name:           "text too long",
			body:           `{"text":"` + strings.Repeat("a", 2001) + `"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeValidation,
		},
		{
			name:           "malformed body",
			body:           `{"text":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrorCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, ctrl := setupQuoteRouter(t, nil)
			before := len(ctrl.All())

			w := serve(engine, http.MethodPost, "/api/v1/quotes", tt.body)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decode[dto.ErrorResponse](t, w).Error.Code)
				assert.Len(t, ctrl.All(), before)

				return
			}

			resp := decode[dto.QuoteResponse](t, w)
			assert.Equal(t, "Stay curious.", resp.Text)
			assert.Equal(t, tt.wantCategory, resp.Category)
			assert.NotEmpty(t, resp.ID)
			assert.Len(t, ctrl.All(), before+1)
		})
	}
}

func TestQuoteHandler_Categories(t *testing.T) {
	engine, _ := setupQuoteRouter(t, nil)

	w := serve(engine, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.CategoriesResponse](t, w)
	assert.Equal(t, domain.DeriveCategories(domain.DefaultQuotes()), resp.Categories)
}

func TestQuoteHandler_Filter(t *testing.T) {
	engine, ctrl := setupQuoteRouter(t, nil)

	w := serve(engine, http.MethodGet, "/api/v1/filter", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.FilterAll, decode[dto.FilterResponse](t, w).Category)

	w = serve(engine, http.MethodPut, "/api/v1/filter", `{"category":"Hope"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hope", decode[dto.FilterResponse](t, w).Category)
	assert.Equal(t, "Hope", ctrl.Filter())

	w = serve(engine, http.MethodPut, "/api/v1/filter", `{"category":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Hope", ctrl.Filter())
}

func TestQuoteHandler_ExportImport(t *testing.T) {
	engine, ctrl := setupQuoteRouter(t, nil)

	w := serve(engine, http.MethodGet, "/api/v1/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), app.DefaultExportName)

	exported, err := ctrl.Export()
	require.NoError(t, err)
	assert.Equal(t, string(exported), w.Body.String())

	w = serve(engine, http.MethodPost, "/api/v1/import", w.Body.String())
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ImportResponse](t, w)
	n := len(domain.DefaultQuotes())
	assert.Equal(t, n, resp.Imported)
	assert.Equal(t, 2*n, resp.Total)
}

func TestQuoteHandler_ImportInvalid(t *testing.T) {
	engine, ctrl := setupQuoteRouter(t, nil)

	w := serve(engine, http.MethodPost, "/api/v1/import?name=backup.json", `{"not":"an array"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, dto.ErrorCodeParse, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "backup.json")
	assert.Len(t, ctrl.All(), len(domain.DefaultQuotes()))
}

func TestQuoteHandler_Reset(t *testing.T) {
	engine, ctrl := setupQuoteRouter(t, nil)

	_, err := ctrl.Add(context.Background(), "Extra", "Misc")
	require.NoError(t, err)
	require.NoError(t, ctrl.SelectCategory(context.Background(), "Misc"))

	w := serve(engine, http.MethodPost, "/api/v1/reset", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.QuoteListResponse](t, w)
	assert.Equal(t, domain.FilterAll, resp.Filter)
	assert.Equal(t, len(domain.DefaultQuotes()), resp.Count)
}

func TestQuoteHandler_RemoteDisabled(t *testing.T) {
	engine, _ := setupQuoteRouter(t, nil)

	for _, path := range []string{"/api/v1/pull", "/api/v1/sync", "/api/v1/quotes/abc/push"} {
		t.Run(path, func(t *testing.T) {
			w := serve(engine, http.MethodPost, path, "")

			assert.Equal(t, http.StatusServiceUnavailable, w.Code)
			assert.Equal(t, dto.ErrorCodeUnavailable, decode[dto.ErrorResponse](t, w).Error.Code)
		})
	}
}

func TestQuoteHandler_Pull(t *testing.T) {
	remote := mocks.NewMockRemoteQuotes(t)
	remote.EXPECT().FetchPage(mock.Anything).Return(domain.Collection{
		{ID: domain.StableID("remote:1"), Text: "Remote one", Category: domain.RemoteCategory},
		{ID: domain.StableID("remote:2"), Text: domain.DefaultQuotes()[0].Text, Category: domain.RemoteCategory},
	}, nil)

	engine, ctrl := setupQuoteRouter(t, remote)

	w := serve(engine, http.MethodPost, "/api/v1/pull", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.PullResponse](t, w)
	require.Len(t, resp.Added, 1)
	assert.Equal(t, "Remote one", resp.Added[0].Text)
	assert.Len(t, ctrl.All(), len(domain.DefaultQuotes())+1)
}

func TestQuoteHandler_PushQuote(t *testing.T) {
	target := domain.DefaultQuotes()[1]

	tests := []struct {
		name           string
		id             string
		setupMock      func(*mocks.MockRemoteQuotes)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "success",
			id:   target.ID,
			setupMock: func(m *mocks.MockRemoteQuotes) {
				m.EXPECT().Push(mock.Anything, mock.MatchedBy(func(q domain.Quote) bool {
					return q.ID == target.ID
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown id",
			id:             "missing",
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrorCodeNotFound,
		},
		{
			name: "remote failure",
			id:   target.ID,
			setupMock: func(m *mocks.MockRemoteQuotes) {
				m.EXPECT().Push(mock.Anything, mock.Anything).
					Return(domain.NewServerError("remote-api", "push", http.StatusInternalServerError, "boom"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   dto.ErrorCodeRemote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := mocks.NewMockRemoteQuotes(t)
			if tt.setupMock != nil {
				tt.setupMock(remote)
			}

			engine, _ := setupQuoteRouter(t, remote)

			w := serve(engine, http.MethodPost, "/api/v1/quotes/"+tt.id+"/push", "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decode[dto.ErrorResponse](t, w).Error.Code)
				return
			}

			resp := decode[dto.QuoteResponse](t, w)
			assert.True(t, resp.Pushed)
		})
	}
}

func TestQuoteHandler_Sync(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		remote := mocks.NewMockRemoteQuotes(t)
		remote.EXPECT().Push(mock.Anything, mock.Anything).Return(nil)
		remote.EXPECT().FetchPage(mock.Anything).Return(domain.Collection{
			{ID: domain.StableID("remote:7"), Text: "From afar", Category: domain.RemoteCategory},
		}, nil)

		engine, _ := setupQuoteRouter(t, remote)

		w := serve(engine, http.MethodPost, "/api/v1/sync", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[dto.SyncResponse](t, w)
		assert.False(t, resp.Skipped)
		assert.Equal(t, 1, resp.Fetched)
		assert.Equal(t, 1, resp.Merged)
		assert.NotEmpty(t, resp.RunID)
	})

	t.Run("fetch failure", func(t *testing.T) {
		remote := mocks.NewMockRemoteQuotes(t)
		remote.EXPECT().Push(mock.Anything, mock.Anything).Return(nil).Maybe()
		remote.EXPECT().FetchPage(mock.Anything).
			Return(nil, domain.NewNetworkError("remote-api", "fetch", errors.New("connection refused")))

		engine, _ := setupQuoteRouter(t, remote)

		w := serve(engine, http.MethodPost, "/api/v1/sync", "")
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, dto.ErrorCodeRemote, decode[dto.ErrorResponse](t, w).Error.Code)
	})
}
