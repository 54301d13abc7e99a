package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "quotekeeper",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "127.0.0.1",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  30 * time.Second,
			MaxRequestSize:  1048576,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: ClientConfig{
			Timeout: 10 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     2 * time.Second,
				Multiplier:      2.0,
				JitterFactor:    0.25,
			},
			CircuitBreaker: CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 3,
			},
			Transport: TransportConfig{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		Remote: RemoteConfig{
			Enabled:   true,
			BaseURL:   "https://jsonplaceholder.typicode.com",
			Name:      "placeholder-api",
			Path:      "/posts",
			PageSize:  10,
			TitlePath: "$.title",
			IDPath:    "$.id",
			Category:  "Server Quote",
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   "./quotekeeper.db",
		},
		Sync: SyncConfig{
			Enabled:  true,
			Interval: time.Minute,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing app name", func(c *Config) { c.App.Name = "" }, "app.name is required"},
		{"bad environment", func(c *Config) { c.App.Environment = "staging" }, "app.environment must be one of"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port must be at most 65535"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level must be one of"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format must be one of"},
		{"log file without path", func(c *Config) { c.Log.File = LogFileConfig{Enabled: true} }, "log.file.path is required"},
		{"telemetry without endpoint", func(c *Config) { c.Telemetry = TelemetryConfig{Enabled: true, ServiceName: "q"} }, "telemetry.endpoint"},
		{"sampling rate too high", func(c *Config) { c.Telemetry.SamplingRate = 1.5 }, "telemetry.samplingrate"},
		{"client timeout minimum", func(c *Config) { c.Client.Timeout = 50 * time.Millisecond }, "client.timeout"},
		{"breaker max failures", func(c *Config) { c.Client.CircuitBreaker.MaxFailures = 0 }, "client.circuitbreaker.maxfailures"},
		{"breaker timeout", func(c *Config) { c.Client.CircuitBreaker.Timeout = 500 * time.Millisecond }, "client.circuitbreaker.timeout"},
		{"remote url invalid", func(c *Config) { c.Remote.BaseURL = "not a url" }, "remote.baseurl must be a valid URL"},
		{"remote path relative", func(c *Config) { c.Remote.Path = "posts" }, `remote.path must start with "/"`},
		{"remote page size zero", func(c *Config) { c.Remote.PageSize = 0 }, "remote.pagesize is required"},
		{"title path not jsonpath", func(c *Config) { c.Remote.TitlePath = "title" }, "remote.titlepath must start with"},
		{"unknown storage driver", func(c *Config) { c.Storage.Driver = "redis" }, "storage.driver must be one of"},
		{"sqlite without path", func(c *Config) { c.Storage.Path = "" }, "storage.path is required"},
		{"sync interval too short", func(c *Config) { c.Sync.Interval = 10 * time.Millisecond }, "sync.interval must be at least"},
		{"intervals inverted", func(c *Config) {
			c.Client.Retry.InitialInterval = time.Second
			c.Client.Retry.MaxInterval = 10 * time.Millisecond
		}, "maxinterval must not be below"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_OptionalSections(t *testing.T) {
	t.Run("remote disabled needs no url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Remote.Enabled = false
		cfg.Remote.BaseURL = ""

		assert.NoError(t, cfg.Validate())
	})

	t.Run("memory storage needs no path", func(t *testing.T) {
		cfg := validConfig()
		cfg.Storage = StorageConfig{Driver: "memory"}

		assert.NoError(t, cfg.Validate())
	})

	t.Run("id path may be empty", func(t *testing.T) {
		cfg := validConfig()
		cfg.Remote.IDPath = ""

		assert.NoError(t, cfg.Validate())
	})
}

//nolint:dupl // Test functions with similar structure are acceptable
func TestConfig_Validate_RetryConfig(t *testing.T) {
	t.Run("max attempts bounds", func(t *testing.T) {
		tests := []struct {
			attempts int
			wantErr  bool
		}{
			{1, false},
			{3, false},
			{10, false},
			{0, true},
			{11, true},
		}

		for _, tt := range tests {
			t.Run(fmt.Sprintf("attempts_%d", tt.attempts), func(t *testing.T) {
				cfg := validConfig()
				cfg.Client.Retry.MaxAttempts = tt.attempts

				err := cfg.Validate()
				if tt.wantErr {
					require.Error(t, err)
					assert.Contains(t, err.Error(), "client.retry.maxattempts")
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("multiplier bounds", func(t *testing.T) {
		tests := []struct {
			multiplier float64
			wantErr    bool
		}{
			{1.1, false},
			{10.0, false},
			{1.0, true},
			{10.1, true},
		}

		for _, tt := range tests {
			t.Run(fmt.Sprintf("multiplier_%v", tt.multiplier), func(t *testing.T) {
				cfg := validConfig()
				cfg.Client.Retry.Multiplier = tt.multiplier

				err := cfg.Validate()
				if tt.wantErr {
					require.Error(t, err)
					assert.Contains(t, err.Error(), "client.retry.multiplier")
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		App: AppConfig{
			Environment: "invalid",
		},
		Server: ServerConfig{
			Port: -1,
		},
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "app.name")
	assert.Contains(t, errStr, "app.version")
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"Config.Server.Port", "server.port"},
		{"Config.Client.Retry.MaxAttempts", "client.retry.maxattempts"},
		{"Config.Remote.TitlePath", "remote.titlepath"},
		{"Config.Sync.Interval", "sync.interval"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFieldPath(tt.namespace))
		})
	}
}
