// Package handler resolves swap-marker collisions.
//
// The decision ladder on finding an existing marker:
//
//  1. An active session still edits the file: hand focus to it and
//     tell the opening editor to switch away.
//  2. No session found and the file was saved after the marker was
//     created: the marker is a leftover from a dead session. Delete it
//     and let the editor open writable. Lookup tool failures count as
//     "no session found"; a host without tmux or wmctrl must still
//     clear its stale markers.
//  3. Anything else: leave the marker alone and open read-only. When
//     in doubt, never risk two writers.
package handler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/timvw/swap-sentinel/internal/locator"
	"github.com/timvw/swap-sentinel/internal/model"
	"github.com/timvw/swap-sentinel/internal/notify"
	ssotel "github.com/timvw/swap-sentinel/internal/otel"
)

var tracer = otel.Tracer("swap-sentinel")

// Focuser raises the window identified by a handle.
type Focuser interface {
	Focus(ctx context.Context, h model.Handle) error
}

// Handler turns a swap-marker collision into a Resolution.
type Handler struct {
	Locator  locator.Locator
	Focuser  Focuser
	Notifier *notify.Scheduler
	Metrics  *ssotel.Metrics

	// Warnf receives degraded-path diagnostics. Nil discards them.
	Warnf func(format string, args ...any)

	// Stat and Remove default to the os functions; tests replace them.
	Stat   func(name string) (os.FileInfo, error)
	Remove func(name string) error

	// Now defaults to time.Now; tests replace it.
	Now func() time.Time
}

// Resolve decides the outcome for a collision on file with an existing
// marker. It never fails: every internal error degrades to the
// read-only outcome.
func (h *Handler) Resolve(ctx context.Context, file, marker string) model.Resolution {
	ctx, span := tracer.Start(ctx, "resolve",
		trace.WithAttributes(
			attribute.String("file", file),
			attribute.String("marker", marker),
		))
	defer span.End()

	start := h.now()
	strategy := h.Locator.Strategy()
	base := filepath.Base(file)

	// A failed lookup is treated like not-found: the stale check below
	// still runs, and its mtime guard keeps live markers safe.
	handle, err := h.locate(ctx, file, marker, strategy)
	if err != nil {
		h.warnf("session lookup failed (%s): %v", strategy, err)
	}

	if !handle.IsZero() {
		if err := h.Focuser.Focus(ctx, handle); err != nil {
			// The session exists even if we could not raise its window;
			// switching away is still the right call.
			h.warnf("focus failed for %s: %v", handle, err)
			h.Metrics.RecordFocusFailure(ctx, string(strategy))
		}
		return h.finish(ctx, model.Resolution{
			File:     file,
			Marker:   marker,
			Outcome:  model.SwitchAway,
			Strategy: strategy,
			Handle:   handle,
			Message:  fmt.Sprintf("Switched to the session already editing %s", base),
		}, start)
	}

	if h.markerIsStale(file, marker) {
		if rmErr := h.remove(marker); rmErr != nil {
			h.warnf("could not delete stale marker %s: %v", marker, rmErr)
		} else {
			h.Metrics.RecordMarkerDeletion(ctx)
			return h.finish(ctx, model.Resolution{
				File:     file,
				Marker:   marker,
				Outcome:  model.DiscardAndEdit,
				Strategy: strategy,
				Message:  fmt.Sprintf("Deleted stale swap marker for %s", base),
			}, start)
		}
	}

	return h.finish(ctx, model.Resolution{
		File:     file,
		Marker:   marker,
		Outcome:  model.OpenReadOnly,
		Strategy: strategy,
		Message:  fmt.Sprintf("Opening %s read-only; another session may still be editing it", base),
	}, start)
}

// locate runs the session lookup and records its metrics.
func (h *Handler) locate(ctx context.Context, file, marker string, strategy model.Strategy) (model.Handle, error) {
	ctx, span := tracer.Start(ctx, "locate",
		trace.WithAttributes(attribute.String("strategy", string(strategy))))
	defer span.End()

	lookupStart := h.now()
	handle, err := h.Locator.Locate(ctx, file, marker)
	durationMs := h.now().Sub(lookupStart).Milliseconds()

	result := "found"
	switch {
	case err != nil:
		result = "error"
		span.RecordError(err)
	case handle.IsZero():
		result = "notfound"
	}
	span.SetAttributes(attribute.String("result", result))
	h.Metrics.RecordLookup(ctx, string(strategy), result, durationMs)

	return handle, err
}

// finish stamps the resolution, parks its notification, and records metrics.
func (h *Handler) finish(ctx context.Context, r model.Resolution, start time.Time) model.Resolution {
	r.ResolvedAt = start.UTC()
	r.DurationMs = h.now().Sub(start).Milliseconds()

	if h.Notifier != nil {
		h.Notifier.Schedule(r.Message)
	}
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("outcome", string(r.Outcome)),
		attribute.String("strategy", string(r.Strategy)),
	)
	h.Metrics.RecordResolution(ctx, string(r.Outcome), string(r.Strategy))

	return r
}

// markerIsStale reports whether the marker predates the file's last
// save. Equal timestamps are not stale: with coarse filesystem
// timestamps a tie cannot prove the editing session is gone.
func (h *Handler) markerIsStale(file, marker string) bool {
	fileInfo, err := h.stat(file)
	if err != nil {
		return false
	}
	markerInfo, err := h.stat(marker)
	if err != nil {
		return false
	}
	return markerInfo.ModTime().Before(fileInfo.ModTime())
}

func (h *Handler) stat(name string) (os.FileInfo, error) {
	if h.Stat != nil {
		return h.Stat(name)
	}
	return os.Stat(name)
}

func (h *Handler) remove(name string) error {
	if h.Remove != nil {
		return h.Remove(name)
	}
	return os.Remove(name)
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) warnf(format string, args ...any) {
	if h.Warnf != nil {
		h.Warnf(format, args...)
	}
}
