package storage

import (
	"context"
	"sort"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
)

// ReadingStore is durable, append-only, time-partitioned storage for readings.
// The partition key is (sensor_id, event_date); recorded_at orders rows inside it.
//
// Ordering guarantee: QueryDay and QueryRange return rows newest first
// (recorded_at DESC). Rows sharing a timestamp come back in unspecified order.
//
// Errors are classified with errors.Is against core/errors:
// ErrStorageUnavailable (connectivity, timeout) or ErrStorageRejected (malformed write).
// An empty partition is an empty slice, never an error.
type ReadingStore interface {
	// Append persists a reading and returns the stored record. Never deduplicates.
	Append(ctx context.Context, reading v1.Reading) (v1.Reading, error)

	// QueryDay returns every reading of one sensor on one day.
	QueryDay(ctx context.Context, sensorID string, day v1.Date) ([]v1.Reading, error)

	// QueryRange returns readings of one sensor on one day with from <= recorded_at <= to.
	// A nil bound is open; with both nil this scans the whole partition.
	QueryRange(ctx context.Context, sensorID string, day v1.Date, from, to *time.Time) ([]v1.Reading, error)
}

// SortNewestFirst orders readings by recorded_at DESC in place.
func SortNewestFirst(readings []v1.Reading) {
	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].RecordedAt.After(readings[j].RecordedAt)
	})
}

// InRange reports whether t lies within the optional closed bounds.
func InRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
