package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotekeeper/internal/mocks"
	"github.com/jsamuelsen/quotekeeper/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.0.0", "abc123", "2026-01-15T10:00:00Z")

	assert.Equal(t, "1.0.0", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, "2026-01-15T10:00:00Z", bi.BuildTime)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestNewHealthHandler_PanicsWithoutRegistry(t *testing.T) {
	assert.PanicsWithValue(t, "HealthHandler: Registry is required", func() {
		NewHealthHandler(HealthHandlerConfig{})
	})
}

func TestHealthHandler_Liveness(t *testing.T) {
	handler := NewHealthHandler(HealthHandlerConfig{Registry: mocks.NewMockHealthRegistry(t)})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/-/live", nil)

	handler.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp livenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name           string
		result         *ports.HealthResult
		expectedStatus int
	}{
		{
			name: "healthy",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{
					"storage": {Status: ports.HealthStatusHealthy},
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "degraded still ready",
			result: &ports.HealthResult{
				Status: ports.HealthStatusDegraded,
				Checks: map[string]*ports.CheckResult{
					"storage":    {Status: ports.HealthStatusHealthy},
					"remote-api": {Status: ports.HealthStatusDegraded, Message: "circuit open"},
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unhealthy",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"storage": {Status: ports.HealthStatusUnhealthy, Message: "database is locked"},
				},
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result)

			handler := NewHealthHandler(HealthHandlerConfig{Registry: registry})

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/-/ready", nil)

			handler.Readiness(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp readinessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.result.Status), resp.Status)
			assert.Len(t, resp.Checks, len(tt.result.Checks))
		})
	}
}

func TestHealthHandler_BuildInfo(t *testing.T) {
	buildInfo := NewBuildInfo("2.0.0", "def456", "2026-06-01T00:00:00Z")
	handler := NewHealthHandler(HealthHandlerConfig{
		Registry:  mocks.NewMockHealthRegistry(t),
		BuildInfo: buildInfo,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/-/build", nil)

	handler.BuildInfoHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, buildInfo, resp)
}

func TestHealthHandler_RegisterHealthRoutesOnEngine(t *testing.T) {
	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(&ports.HealthResult{Status: ports.HealthStatusHealthy})

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("quotekeeper_quotes 9\n"))
	})

	engine := gin.New()
	NewHealthHandler(HealthHandlerConfig{Registry: registry, Metrics: metrics}).
		RegisterHealthRoutesOnEngine(engine)

	for _, path := range []string{"/-/live", "/-/ready", "/-/build", "/-/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/metrics", nil))
	assert.Contains(t, w.Body.String(), "quotekeeper_quotes")
}
