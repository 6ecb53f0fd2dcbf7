package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	coreerr "github.com/Schnee111/smart-city-monitoring-system/internal/core/errors"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/partition"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/storage"
)

// Store is an in-memory storage.ReadingStore.
// Partitions live in a sync.Map and each carries its own lock, so writers to
// different sensors never contend. Useful for tests and development.
type Store struct {
	partitions sync.Map // partition.Key -> *bucket
}

// bucket holds one partition's readings sorted by recorded_at ascending.
type bucket struct {
	mu       sync.RWMutex
	readings []v1.Reading
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(ctx context.Context, reading v1.Reading) (v1.Reading, error) {
	if err := ctx.Err(); err != nil {
		return v1.Reading{}, fmt.Errorf("append reading: %w: %w", coreerr.ErrStorageUnavailable, err)
	}
	if reading.SensorID == "" || reading.EventDate.IsZero() || reading.RecordedAt.IsZero() {
		return v1.Reading{}, fmt.Errorf("append reading: %w: partition key incomplete", coreerr.ErrStorageRejected)
	}

	value, _ := s.partitions.LoadOrStore(partition.KeyOf(reading), &bucket{})
	b := value.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	// Insert after any equal timestamps so duplicates keep arrival order.
	idx := sort.Search(len(b.readings), func(i int) bool {
		return b.readings[i].RecordedAt.After(reading.RecordedAt)
	})
	b.readings = append(b.readings, v1.Reading{})
	copy(b.readings[idx+1:], b.readings[idx:])
	b.readings[idx] = reading

	return reading, nil
}

func (s *Store) QueryDay(ctx context.Context, sensorID string, day v1.Date) ([]v1.Reading, error) {
	return s.QueryRange(ctx, sensorID, day, nil, nil)
}

func (s *Store) QueryRange(ctx context.Context, sensorID string, day v1.Date, from, to *time.Time) ([]v1.Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("query readings: %w: %w", coreerr.ErrStorageUnavailable, err)
	}

	value, ok := s.partitions.Load(partition.Key{SensorID: sensorID, Day: day})
	if !ok {
		return []v1.Reading{}, nil
	}
	b := value.(*bucket)

	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]v1.Reading, 0, len(b.readings))
	for i := len(b.readings) - 1; i >= 0; i-- {
		if storage.InRange(b.readings[i].RecordedAt, from, to) {
			out = append(out, b.readings[i])
		}
	}
	return out, nil
}

// Len returns the number of readings in one partition.
func (s *Store) Len(sensorID string, day v1.Date) int {
	value, ok := s.partitions.Load(partition.Key{SensorID: sensorID, Day: day})
	if !ok {
		return 0
	}
	b := value.(*bucket)
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.readings)
}
