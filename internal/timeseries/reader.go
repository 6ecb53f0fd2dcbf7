package timeseries

import (
	"context"
	"fmt"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/calendar"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/storage"
)

// Reader answers point and day-scoped queries over the reading store.
// Every query touches at most two partitions of one sensor.
type Reader struct {
	store storage.ReadingStore
	clock *calendar.Clock
}

func NewReader(store storage.ReadingStore, clock *calendar.Clock) *Reader {
	if store == nil {
		panic("timeseries: nil store")
	}
	if clock == nil {
		panic("timeseries: nil clock")
	}
	return &Reader{store: store, clock: clock}
}

// Latest returns the newest reading from today, falling back to yesterday.
// Returns nil, nil when both partitions are empty. Older days are never scanned.
func (r *Reader) Latest(ctx context.Context, sensorID string) (*v1.Reading, error) {
	today := r.clock.Today()

	for _, day := range []v1.Date{today, today.AddDays(-1)} {
		readings, err := r.store.QueryDay(ctx, sensorID, day)
		if err != nil {
			return nil, fmt.Errorf("latest reading for %s on %s: %w", sensorID, day, err)
		}
		if latest := newest(readings); latest != nil {
			return latest, nil
		}
	}

	return nil, nil
}

// ByDay returns every reading of sensorID on day, newest first.
func (r *Reader) ByDay(ctx context.Context, sensorID string, day v1.Date) ([]v1.Reading, error) {
	return r.store.QueryDay(ctx, sensorID, day)
}

// ByRange returns readings on day with from <= recorded_at <= to. Nil bounds are open.
func (r *Reader) ByRange(ctx context.Context, sensorID string, day v1.Date, from, to *time.Time) ([]v1.Reading, error) {
	return r.store.QueryRange(ctx, sensorID, day, from, to)
}

// Today exposes the reader's notion of the current day.
func (r *Reader) Today() v1.Date {
	return r.clock.Today()
}

// newest picks the max RecordedAt. The store already orders newest first,
// but the scan is one partition so it is not trusted blindly.
func newest(readings []v1.Reading) *v1.Reading {
	if len(readings) == 0 {
		return nil
	}
	best := readings[0]
	for _, r := range readings[1:] {
		if r.RecordedAt.After(best.RecordedAt) {
			best = r
		}
	}
	return &best
}
