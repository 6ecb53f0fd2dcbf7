package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/calendar"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/storage"
	"github.com/Schnee111/smart-city-monitoring-system/internal/observability/metrics"
)

var (
	// ErrWriterClosed is returned for async submissions after shutdown began.
	ErrWriterClosed = errors.New("ingestion writer closed")

	// ErrQueueFull is returned when an async submission found no room in its
	// lane within the enqueue timeout.
	ErrQueueFull = errors.New("ingestion queue full")
)

// Mode selects whether Submit waits for the write.
type Mode int

const (
	// ModeSync persists and notifies before Submit returns.
	ModeSync Mode = iota
	// ModeAsync queues the write and returns a pending handle immediately.
	ModeAsync
)

func (m Mode) String() string {
	if m == ModeAsync {
		return "async"
	}
	return "sync"
}

// Notifier publishes a persisted reading to subscribers. Best effort: it has
// no error to return.
type Notifier interface {
	Publish(ctx context.Context, reading v1.Reading)
}

// Options tunes the async dispatcher.
type Options struct {
	Workers        int
	QueueSize      int
	EnqueueTimeout time.Duration
}

// Writer is the single entry point for new readings: validate, stamp,
// append, then fan out.
type Writer struct {
	store    storage.ReadingStore
	notifier Notifier
	clock    *calendar.Clock
	async    *dispatcher
}

func NewWriter(store storage.ReadingStore, notifier Notifier, clock *calendar.Clock, opts Options) *Writer {
	if store == nil {
		panic("ingestion: store must not be nil")
	}
	if notifier == nil {
		panic("ingestion: notifier must not be nil")
	}
	if clock == nil {
		panic("ingestion: clock must not be nil")
	}

	w := &Writer{store: store, notifier: notifier, clock: clock}
	w.async = newDispatcher(opts.Workers, opts.QueueSize, opts.EnqueueTimeout, w.runJob)
	return w
}

// Submit validates and stamps reading, then writes it.
//
// ModeSync returns a resolved handle, or the write error directly.
// ModeAsync returns as soon as the reading is queued; the outcome arrives on
// the handle. An invalid reading fails immediately in both modes and never
// reaches the store or subscribers.
func (w *Writer) Submit(ctx context.Context, reading v1.Reading, mode Mode) (*Pending, error) {
	if err := reading.Validate(); err != nil {
		metrics.ObserveIngest(mode.String(), err, 0)
		return nil, err
	}
	reading = w.stamp(reading)

	if mode == ModeSync {
		start := time.Now()
		stored, err := w.persist(ctx, reading)
		metrics.ObserveIngest(mode.String(), err, time.Since(start))
		if err != nil {
			return nil, err
		}
		return resolvedPending(stored, nil), nil
	}

	pending := newPending()
	metrics.QueueEntered()
	err := w.async.enqueue(ctx, job{
		ctx:        ctx,
		reading:    reading,
		pending:    pending,
		enqueuedAt: time.Now(),
	})
	if err != nil {
		metrics.QueueLeft()
		return nil, err
	}
	return pending, nil
}

// Write is a synchronous Submit that returns the stored reading.
func (w *Writer) Write(ctx context.Context, reading v1.Reading) (v1.Reading, error) {
	pending, err := w.Submit(ctx, reading, ModeSync)
	if err != nil {
		return v1.Reading{}, err
	}
	return pending.Wait(ctx)
}

// Close stops accepting async submissions and waits for the queue to drain.
// Sync submissions are unaffected.
func (w *Writer) Close(ctx context.Context) error {
	if err := w.async.close(ctx); err != nil {
		return fmt.Errorf("ingestion queue did not drain: %w", err)
	}
	slog.Info("[Ingest] Writer drained and closed")
	return nil
}

func (w *Writer) stamp(reading v1.Reading) v1.Reading {
	if reading.RecordedAt.IsZero() {
		reading.RecordedAt = w.clock.Now()
	}
	// TIMESTAMPTZ keeps microseconds; the returned reading must match what is stored.
	reading.RecordedAt = reading.RecordedAt.Truncate(time.Microsecond)
	if reading.EventDate.IsZero() {
		reading.EventDate = w.clock.DateOf(reading.RecordedAt)
	}
	return reading
}

// persist appends then notifies. Subscribers are only told about readings
// that are durably stored. Notification is detached from ctx so a caller
// that disconnects after the write does not silence the fanout.
func (w *Writer) persist(ctx context.Context, reading v1.Reading) (v1.Reading, error) {
	stored, err := w.store.Append(ctx, reading)
	if err != nil {
		slog.Warn("[Ingest] Failed to append reading",
			"sensor_id", reading.SensorID,
			"event_date", reading.EventDate.String(),
			"error", err)
		return v1.Reading{}, err
	}

	w.notifier.Publish(context.WithoutCancel(ctx), stored)
	return stored, nil
}

// runJob executes one queued write. The caller's cancellation no longer
// applies once a submission is accepted.
func (w *Writer) runJob(j job) {
	metrics.QueueLeft()

	stored, err := w.persist(context.WithoutCancel(j.ctx), j.reading)
	metrics.ObserveIngest(ModeAsync.String(), err, time.Since(j.enqueuedAt))
	j.pending.resolve(stored, err)
}
