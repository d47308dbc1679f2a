package analytics

import "context"

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	trackerContextKey contextKey = "analytics_tracker"
)

// WithTracker adds a tracker to the context
func WithTracker(ctx context.Context, tracker *Tracker) context.Context {
	return context.WithValue(ctx, trackerContextKey, tracker)
}

// FromContext retrieves the tracker from context
func FromContext(ctx context.Context) *Tracker {
	if tracker, ok := ctx.Value(trackerContextKey).(*Tracker); ok {
		return tracker
	}
	return nil
}

func TrackSession(ctx context.Context, start bool) {
	if tracker := FromContext(ctx); tracker != nil {
		tracker.TrackSession(ctx, start)
	}
}

func TrackView(ctx context.Context, viewID string) {
	if tracker := FromContext(ctx); tracker != nil {
		tracker.TrackView(ctx, viewID)
	}
}

func TrackPage(ctx context.Context, page string, opts ...PageOption) {
	if tracker := FromContext(ctx); tracker != nil {
		tracker.TrackPage(ctx, page, opts...)
	}
}

func TrackEvent(ctx context.Context, category, action string, opts ...EventOption) {
	if tracker := FromContext(ctx); tracker != nil {
		tracker.TrackEvent(ctx, category, action, opts...)
	}
}
