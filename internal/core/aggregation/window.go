package aggregation

import (
	"fmt"
	"sort"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"github.com/shopspring/decimal"
)

// GranularityRaw means "no bucketing".
const GranularityRaw = "raw"

// ParseGranularity parses a bucket width for intra-day rollups.
// "raw" or "" yields 0. Otherwise Go duration syntax ("15m", "1h"); the width
// must divide a day evenly so buckets never straddle midnight.
func ParseGranularity(s string) (time.Duration, error) {
	if s == "" || s == GranularityRaw {
		return 0, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid granularity %q: %w", s, err)
	}
	if d < time.Minute {
		return 0, fmt.Errorf("granularity must be at least 1m, got %q", s)
	}
	if (24*time.Hour)%d != 0 {
		return 0, fmt.Errorf("granularity must divide 24h evenly, got %q", s)
	}
	return d, nil
}

// BucketFor returns the start of the bucket t falls in, counted from local
// midnight of day. Unlike time.Truncate this respects the reference zone offset.
// Example: BucketFor(10:35:42, 1h) -> 10:00:00
func BucketFor(t time.Time, day v1.Date, loc *time.Location, width time.Duration) time.Time {
	start := day.In(loc)
	offset := t.Sub(start)
	if offset < 0 {
		return start
	}
	return start.Add(offset - offset%width)
}

// FoldBuckets rolls one partition into fixed-width buckets, oldest first.
// Empty buckets are omitted.
func FoldBuckets(readings []v1.Reading, day v1.Date, loc *time.Location, width time.Duration) []Bucket {
	byStart := make(map[time.Time]*bucketState)
	for _, r := range readings {
		start := BucketFor(r.RecordedAt, day, loc, width)
		state, ok := byStart[start]
		if !ok {
			state = &bucketState{bucket: Bucket{
				Start:      start,
				TotalUsage: decimal.Zero,
				MinVoltage: r.Voltage,
				MaxVoltage: r.Voltage,
			}}
			byStart[start] = state
		}
		state.add(r)
	}

	buckets := make([]Bucket, 0, len(byStart))
	for _, state := range byStart {
		buckets = append(buckets, state.finish())
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Start.Before(buckets[j].Start) })
	return buckets
}

type bucketState struct {
	bucket     Bucket
	voltageSum int64
}

func (s *bucketState) add(r v1.Reading) {
	s.bucket.TotalUsage = s.bucket.TotalUsage.Add(r.Usage)
	s.bucket.ReadingCount++
	s.voltageSum += int64(r.Voltage)
	if r.Voltage < s.bucket.MinVoltage {
		s.bucket.MinVoltage = r.Voltage
	}
	if r.Voltage > s.bucket.MaxVoltage {
		s.bucket.MaxVoltage = r.Voltage
	}
}

func (s *bucketState) finish() Bucket {
	b := s.bucket
	b.MeanVoltage = float64(s.voltageSum) / float64(b.ReadingCount)
	return b
}
