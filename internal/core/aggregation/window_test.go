package aggregation

import (
	"testing"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      time.Duration
		wantError bool
	}{
		{name: "empty is raw", input: "", want: 0},
		{name: "raw", input: "raw", want: 0},
		{name: "hour", input: "1h", want: time.Hour},
		{name: "quarter hour", input: "15m", want: 15 * time.Minute},
		{name: "whole day", input: "24h", want: 24 * time.Hour},
		{name: "does not divide a day", input: "7h", wantError: true},
		{name: "too fine", input: "30s", wantError: true},
		{name: "negative", input: "-1h", wantError: true},
		{name: "unknown unit", input: "10x", wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseGranularity(tc.input)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestBucketFor(t *testing.T) {
	day := v1.Date{Year: 2026, Month: time.February, Day: 11}
	ts := time.Date(2026, 2, 11, 10, 35, 42, 123456789, time.UTC)

	require.Equal(t,
		time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC),
		BucketFor(ts, day, time.UTC, time.Hour),
	)
	require.Equal(t,
		time.Date(2026, 2, 11, 10, 30, 0, 0, time.UTC),
		BucketFor(ts, day, time.UTC, 15*time.Minute),
	)
	require.Equal(t,
		time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
		BucketFor(ts, day, time.UTC, 24*time.Hour),
	)
}

func TestBucketFor_ReferenceZone(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	day := v1.Date{Year: 2026, Month: time.February, Day: 11}

	// 02:10 UTC is 09:10 WIB.
	got := BucketFor(time.Date(2026, 2, 11, 2, 10, 0, 0, time.UTC), day, jakarta, 2*time.Hour)
	require.Equal(t, time.Date(2026, 2, 11, 8, 0, 0, 0, jakarta), got)
}

func TestFoldBuckets(t *testing.T) {
	day := v1.Date{Year: 2026, Month: time.February, Day: 11}
	at := func(h, m int) time.Time { return time.Date(2026, 2, 11, h, m, 0, 0, time.UTC) }

	readings := []v1.Reading{
		{RecordedAt: at(11, 5), Usage: decimal.RequireFromString("0.25"), Voltage: 230},
		{RecordedAt: at(9, 50), Usage: decimal.RequireFromString("1.5"), Voltage: 220},
		{RecordedAt: at(9, 10), Usage: decimal.RequireFromString("2.25"), Voltage: 218},
	}

	buckets := FoldBuckets(readings, day, time.UTC, time.Hour)
	require.Len(t, buckets, 2)

	require.Equal(t, at(9, 0), buckets[0].Start)
	require.True(t, decimal.RequireFromString("3.75").Equal(buckets[0].TotalUsage))
	require.Equal(t, 2, buckets[0].ReadingCount)
	require.InDelta(t, 219.0, buckets[0].MeanVoltage, 1e-9)
	require.Equal(t, 218, buckets[0].MinVoltage)
	require.Equal(t, 220, buckets[0].MaxVoltage)

	require.Equal(t, at(11, 0), buckets[1].Start)
	require.Equal(t, 1, buckets[1].ReadingCount)
}

func TestFoldBuckets_Empty(t *testing.T) {
	buckets := FoldBuckets(nil, v1.Date{Year: 2026, Month: time.February, Day: 11}, time.UTC, time.Hour)
	require.NotNil(t, buckets)
	require.Empty(t, buckets)
}
