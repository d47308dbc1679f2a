// Package analytics is a small Google Analytics Measurement Protocol v1
// beacon.
//
// A Tracker is initialized once with the analytics property and the
// application identity, then each tracking call builds a parameter set from
// the tracker state and fires a single GET request to the collection
// endpoint. Requests are fire-and-forget: tracking calls never block on the
// network, responses are ignored and failed hits are dropped.
//
//	tracker := analytics.NewTracker().Init(analytics.Config{
//		TrackingID: "UA-12345678-99",
//		AppName:    "My app",
//		AppVersion: "1.0.0",
//	})
//	tracker.TrackSession(ctx, true)
//	tracker.TrackView(ctx, "main_view")
//	tracker.TrackEvent(ctx, "Event category", "Event action")
//
// Files in this package:
// - tracker.go: Tracker state, construction and initialization
// - params.go: parameter keys, parameter set building and query encoding
// - hits.go: the public tracking operations
// - dispatch.go: asynchronous transmission and in-flight bookkeeping
// - transport.go, helper.go: the two Transport implementations
// - context.go, global.go: context and process-wide access
// - logger.go: the "[ga]" prefixed logger
package analytics
