package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotekeeper/internal/app"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(http.MethodGet, "/", nil)
	} else {
		r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}

	c.Request = r

	return c, w
}

func TestNewErrorResponse(t *testing.T) {
	got := NewErrorResponse(ErrorCodeNotFound, "quote not found").WithTraceID("trace-1")

	assert.Equal(t, &ErrorResponse{
		Error:   ErrorDetail{Code: ErrorCodeNotFound, Message: "quote not found"},
		TraceID: "trace-1",
	}, got)

	withDetails := NewErrorResponseWithDetails(ErrorCodeValidation, "invalid", map[string]string{"text": "too long"})
	assert.Equal(t, "too long", withDetails.Error.Details["text"])
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeParse, http.StatusBadRequest},
		{ErrorCodeRemote, http.StatusBadGateway},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("validate failed: %w", domain.NewValidationError("text", "please enter a quote")),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeValidation,
			wantMsg:    "please enter a quote",
		},
		{
			name:       "parse",
			err:        domain.NewParseError("quotes.json", errors.New("unexpected EOF")),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeParse,
			wantMsg:    "invalid JSON in quotes.json",
		},
		{
			name:       "not found",
			err:        domain.NewNotFoundError("quote", "q-1"),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
			wantMsg:    `quote with id "q-1" not found`,
		},
		{
			name:       "network",
			err:        domain.NewNetworkError("placeholder-api", "pull", errors.New("connection refused")),
			wantStatus: http.StatusBadGateway,
			wantCode:   ErrorCodeRemote,
			wantMsg:    "connection refused",
		},
		{
			name:       "server",
			err:        fmt.Errorf("sync: %w", domain.NewServerError("placeholder-api", "push", 500, "")),
			wantStatus: http.StatusBadGateway,
			wantCode:   ErrorCodeRemote,
			wantMsg:    "HTTP 500",
		},
		{
			name:       "remote disabled",
			err:        app.ErrRemoteDisabled,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
			wantMsg:    "remote API is disabled",
		},
		{
			name:       "deadline",
			err:        fmt.Errorf("pull: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   ErrorCodeTimeout,
			wantMsg:    "deadline exceeded",
		},
		{
			name:       "binding",
			err:        fmt.Errorf("%w: EOF", ErrBinding),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeBadRequest,
			wantMsg:    "binding failed",
		},
		{
			name:       "unknown",
			err:        errors.New("database is locked"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
			wantMsg:    "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.wantMsg)
		})
	}

	status, resp := MapError(nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestMapError_ValidationDetails(t *testing.T) {
	_, resp := MapError(domain.NewValidationError("text", "please enter a quote"))

	assert.Equal(t, map[string]string{"text": "please enter a quote"}, resp.Error.Details)
}

func TestGetTraceID(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*gin.Context)
		want  string
	}{
		{
			name:  "trace ID in context",
			setup: func(c *gin.Context) { c.Set(ContextKeyTraceID, "context-trace-123") },
			want:  "context-trace-123",
		},
		{
			name:  "request ID header",
			setup: func(c *gin.Context) { c.Request.Header.Set("X-Request-ID", "header-456") },
			want:  "header-456",
		},
		{
			name: "context wins over header",
			setup: func(c *gin.Context) {
				c.Set(ContextKeyTraceID, "context-trace-123")
				c.Request.Header.Set("X-Request-ID", "header-456")
			},
			want: "context-trace-123",
		},
		{
			name:  "nothing set",
			setup: func(*gin.Context) {},
			want:  "",
		},
		{
			name:  "wrong type in context",
			setup: func(c *gin.Context) { c.Set(ContextKeyTraceID, 12345) },
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext("")
			tt.setup(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

func TestHandleError(t *testing.T) {
	c, w := newTestContext("")
	c.Set(ContextKeyTraceID, "trace-789")

	HandleError(c, domain.NewNotFoundError("quote", "q-9"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, "trace-789", resp.TraceID)
}

func TestAbortWithErrorCode(t *testing.T) {
	c, w := newTestContext("")

	AbortWithErrorCode(c, ErrorCodeTimeout, "request timeout exceeded")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "request timeout exceeded")
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    error
		wantFields map[string]string
	}{
		{
			name: "valid filter",
			body: `{"category": "Hope"}`,
		},
		{
			name:       "missing category",
			body:       `{}`,
			wantErr:    ErrValidation,
			wantFields: map[string]string{"category": "this field is required"},
		},
		{
			name:       "blank category",
			body:       `{"category": "   "}`,
			wantErr:    ErrValidation,
			wantFields: map[string]string{"category": "must not be empty"},
		},
		{
			name:       "too long",
			body:       `{"category": "` + strings.Repeat("x", 101) + `"}`,
			wantErr:    ErrValidation,
			wantFields: map[string]string{"category": "must be at most 100 characters"},
		},
		{
			name:    "malformed",
			body:    `{"category":`,
			wantErr: ErrBinding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(tt.body)

			var req FilterRequest
			err := BindAndValidate(c, &req)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "Hope", req.Category)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)

			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, ValidationErrors(err))
			}
		})
	}
}

func TestValidationMessage_UnknownTag(t *testing.T) {
	type sample struct {
		Kind string `json:"kind" validate:"alpha"`
	}

	err := Validate(sample{Kind: "123"})

	require.Error(t, err)
	assert.Equal(t, map[string]string{"kind": "failed validation: alpha"}, ValidationErrors(err))
}

func TestNewQuoteListResponse(t *testing.T) {
	quotes := domain.Collection{
		{ID: "a", Text: "alpha", Category: "X", Pushed: true},
		{ID: "b", Text: "beta", Category: "X"},
	}

	got := NewQuoteListResponse("X", quotes)

	assert.Equal(t, "X", got.Filter)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, QuoteResponse{ID: "a", Text: "alpha", Category: "X", Pushed: true}, got.Quotes[0])

	empty := NewQuoteListResponse(domain.FilterAll, nil)
	assert.NotNil(t, empty.Quotes)
}

func TestNewSyncResponse(t *testing.T) {
	got := NewSyncResponse(app.SyncReport{
		RunID:    "run-1",
		Fetched:  10,
		Pushed:   2,
		Merged:   3,
		Duration: 1500 * time.Millisecond,
	})

	assert.Equal(t, SyncResponse{RunID: "run-1", Fetched: 10, Pushed: 2, Merged: 3, Duration: "1.5s"}, got)
}
