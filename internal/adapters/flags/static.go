// Package flags provides feature flag adapters.
package flags

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
)

// StaticConfig configures a Static flag set.
type StaticConfig struct {
	// Values is the "flags" config section. Nested maps are flattened with
	// dots, so {"sync": {"track_pushed": true}} defines "sync.track_pushed".
	Values map[string]any

	Logger *slog.Logger
}

// Static implements ports.FeatureFlags from configuration values. The set is
// fixed once built. String values are parsed, so flags can be overridden from
// the environment.
type Static struct {
	values map[string]any
	logger *slog.Logger
}

// NewStatic creates a flag set from configuration.
func NewStatic(cfg StaticConfig) *Static {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	values := make(map[string]any)
	flatten("", cfg.Values, values)

	return &Static{
		values: values,
		logger: logger.With(slog.String("component", "flags.Static")),
	}
}

func flatten(prefix string, in, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}

		out[key] = v
	}
}

// All returns a copy of every flag value.
func (s *Static) All() map[string]any {
	return maps.Clone(s.values)
}

// IsEnabled implements ports.FeatureFlags.
func (s *Static) IsEnabled(ctx context.Context, flag string, defaultValue bool) bool {
	v, ok := s.values[flag]
	if !ok {
		return defaultValue
	}

	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			s.invalid(ctx, flag, v)
			return defaultValue
		}

		return b
	default:
		s.invalid(ctx, flag, v)
		return defaultValue
	}
}

func (s *Static) invalid(ctx context.Context, flag string, v any) {
	s.logger.WarnContext(ctx, "feature flag has unexpected type, using default",
		slog.String("flag", flag),
		slog.String("type", fmt.Sprintf("%T", v)),
	)
}
