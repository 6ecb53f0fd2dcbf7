package calendar

import (
	"testing"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"github.com/stretchr/testify/require"
)

func TestClock_TodayUsesReferenceZone(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	// 18:30 UTC on Feb 7 is already Feb 8 in WIB.
	instant := time.Date(2026, 2, 7, 18, 30, 0, 0, time.UTC)

	c := NewWithNow(wib, func() time.Time { return instant })

	require.Equal(t, v1.Date{Year: 2026, Month: time.February, Day: 8}, c.Today())
	require.Equal(t, wib, c.Now().Location())
	require.Equal(t, v1.Date{Year: 2026, Month: time.February, Day: 7}, NewWithNow(time.UTC, func() time.Time { return instant }).Today())
}

func TestClock_DateOf(t *testing.T) {
	c := New(time.FixedZone("WIB", 7*60*60))
	require.Equal(t,
		v1.Date{Year: 2026, Month: time.January, Day: 1},
		c.DateOf(time.Date(2025, 12, 31, 17, 0, 0, 0, time.UTC)))
}

func TestClock_DayBounds(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	c := New(wib)

	start, end := c.DayBounds(v1.Date{Year: 2026, Month: time.February, Day: 8})
	require.True(t, start.Equal(time.Date(2026, 2, 8, 0, 0, 0, 0, wib)))
	require.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultTimezone, c.Location().String())

	_, err = Load("Mars/Olympus")
	require.Error(t, err)
}

func TestNewWithNow_NilDefaults(t *testing.T) {
	c := NewWithNow(nil, nil)
	require.Equal(t, time.UTC, c.Location())
	require.WithinDuration(t, time.Now(), c.Now(), time.Second)
}
