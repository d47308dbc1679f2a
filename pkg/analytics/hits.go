package analytics

import (
	"context"
	"strconv"
)

// TrackSession sends a session control hit marking the start or the end of
// a session.
func (t *Tracker) TrackSession(ctx context.Context, start bool) *Tracker {
	t.mu.Lock()
	params := t.buildParameters()
	if start {
		params.Set(keySessionControl, sessionStart)
	} else {
		params.Set(keySessionControl, sessionEnd)
	}
	t.sessionStarted = true
	t.mu.Unlock()

	t.send(ctx, params)
	return t
}

// TrackView sends a screenview hit for a mobile or desktop view.
func (t *Tracker) TrackView(ctx context.Context, viewID string) *Tracker {
	if viewID == "" {
		t.logger.Error("trackView method expects first parameter to be a non-empty string.")
		return t
	}

	t.mu.Lock()
	params := t.buildParameters()
	t.mu.Unlock()

	params.Set(keyHitType, string(HitTypeScreenView))
	params.Set(keyScreenName, viewID)

	t.send(ctx, params)
	return t
}

type pageOptions struct {
	title    string
	hasTitle bool
}

type PageOption func(*pageOptions)

// WithTitle adds the document title (dt) to a pageview.
func WithTitle(title string) PageOption {
	return func(o *pageOptions) {
		o.title = title
		o.hasTitle = true
	}
}

// TrackPage sends a pageview hit for a web page path.
func (t *Tracker) TrackPage(ctx context.Context, page string, opts ...PageOption) *Tracker {
	if page == "" {
		t.logger.Error("trackPage method expects first parameter to be a non-empty string.")
		return t
	}

	var o pageOptions
	for _, opt := range opts {
		opt(&o)
	}

	t.mu.Lock()
	params := t.buildParameters()
	t.mu.Unlock()

	params.Set(keyHitType, string(HitTypePageView))
	params.Set(keyDocumentPath, page)
	if o.hasTitle {
		params.Set(keyDocumentTitle, o.title)
	}

	t.send(ctx, params)
	return t
}

type eventOptions struct {
	label string
	value int64
}

type EventOption func(*eventOptions)

// WithLabel sets the event label (el). Without it the label is empty.
func WithLabel(label string) EventOption {
	return func(o *eventOptions) {
		o.label = label
	}
}

// WithValue sets the event value (ev). Without it the value is 0.
func WithValue(value int64) EventOption {
	return func(o *eventOptions) {
		o.value = value
	}
}

// TrackEvent sends an event hit. The parameter set is built before the
// arguments are validated, so an invalid call still consumes the pending
// session start and custom metrics without transmitting them.
func (t *Tracker) TrackEvent(ctx context.Context, category, action string, opts ...EventOption) *Tracker {
	t.mu.Lock()
	params := t.buildParameters()
	t.mu.Unlock()

	params.Set(keyHitType, string(HitTypeEvent))

	if category == "" {
		t.logger.Error("trackEvent method expects first parameter (category) to be a non-empty string.")
		return t
	}
	params.Set(keyEventCategory, category)

	if action == "" {
		t.logger.Error("trackEvent method expects second parameter (action) to be a non-empty string.")
		return t
	}
	params.Set(keyEventAction, action)

	var o eventOptions
	for _, opt := range opts {
		opt(&o)
	}
	params.Set(keyEventLabel, o.label)
	params.Set(keyEventValue, strconv.FormatInt(o.value, 10))

	t.send(ctx, params)
	return t
}

// SetCustomMetric attaches cm<index>=value to the next hit only.
func (t *Tracker) SetCustomMetric(index int, value float64) {
	if index <= 0 {
		t.logger.Error("setCustomMetric expects a positive index", "index", index)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.pendingMetrics[index] = value
}

// SetCustomDimension attaches cd<index>=value to the next hit only.
func (t *Tracker) SetCustomDimension(index int, value string) {
	if index <= 0 {
		t.logger.Error("setCustomDimension expects a positive index", "index", index)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.pendingDimensions[index] = value
}
