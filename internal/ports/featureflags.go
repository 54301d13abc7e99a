package ports

import (
	"context"
)

// Feature flag names evaluated by the application.
const (
	// FlagTrackPushed selects how Sync decides which local quotes to push.
	// On: push quotes without the pushed marker. Off: push every quote whose
	// text is missing from the fetched remote page.
	FlagTrackPushed = "sync.track_pushed"
)

// FeatureFlags defines the contract for feature flag evaluation.
// The application never knows which provider backs it.
//
// Always pass a default value so evaluation degrades gracefully:
//
//	if flags.IsEnabled(ctx, ports.FlagTrackPushed, true) {
//	    return pending(collection)
//	}
type FeatureFlags interface {
	// IsEnabled checks if a boolean feature flag is enabled.
	// Returns defaultValue if the flag doesn't exist or evaluation fails.
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool
}
