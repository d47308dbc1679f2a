package analytics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/docker/gabeacon/pkg/analytics"

// send hands params to the transport on a background goroutine and returns
// immediately. The caller's cancellation does not reach the request; only
// the send timeout does.
func (t *Tracker) send(ctx context.Context, params *Params) {
	rawURL := t.endpoint + encodeQuery(params)

	hitType, ok := params.Get(keyHitType)
	if !ok {
		hitType = "session"
	}
	trackingID, _ := params.Get(keyTrackingID)

	ctx = context.WithoutCancel(ctx)

	t.dispatchStarted()
	started := t.inflight.TryGo(func() error {
		defer t.dispatchDone()

		ctx, cancel := context.WithTimeout(ctx, t.timeout)
		defer cancel()

		ctx, span := otel.Tracer(tracerName).Start(ctx, "analytics.send",
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("ga.hit_type", hitType),
				attribute.String("ga.tracking_id", trackingID),
			),
		)
		defer span.End()

		t.logger.Debug("Sending hit", "hit_type", hitType, "endpoint", t.endpoint)
		if err := t.transport.Get(ctx, rawURL); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			t.logger.Debug("Failed to send hit", "hit_type", hitType, "error", err)
			return nil
		}

		t.logger.Debug("Hit sent", "hit_type", hitType)
		return nil
	})
	if !started {
		t.dispatchDone()
		t.logger.Warn("Hit dropped", "reason", "too_many_in_flight", "hit_type", hitType)
	}
}

func (t *Tracker) dispatchStarted() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending == 0 {
		t.idle = make(chan struct{})
	}
	t.pending++
}

func (t *Tracker) dispatchDone() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending--
	if t.pending == 0 {
		close(t.idle)
	}
}

// Wait blocks until the number of in-flight hits drops to zero or ctx is
// done. Hits fired before that point are waited on too. It is safe to call
// from several goroutines, concurrently with tracking calls.
func (t *Tracker) Wait(ctx context.Context) error {
	t.mu.Lock()
	if t.pending == 0 {
		t.mu.Unlock()
		return nil
	}
	idle := t.idle
	t.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for in-flight hits: %w", ctx.Err())
	}
}
