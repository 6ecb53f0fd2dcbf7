package calendar

import (
	"fmt"
	"time"
	_ "time/tzdata" // distroless images ship no zoneinfo

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
)

// DefaultTimezone is the reference zone readings are bucketed in when none is configured.
const DefaultTimezone = "Asia/Jakarta"

// Clock derives "now" and "today" in a fixed reference time zone.
// Every component that needs a calendar day takes a Clock instead of calling time.Now.
type Clock struct {
	loc   *time.Location
	nowFn func() time.Time
}

// New returns a wall clock in loc. A nil loc means UTC.
func New(loc *time.Location) *Clock {
	return NewWithNow(loc, time.Now)
}

// NewWithNow returns a clock driven by nowFn. Used by tests to pin the instant.
func NewWithNow(loc *time.Location, nowFn func() time.Time) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Clock{loc: loc, nowFn: nowFn}
}

// Load resolves an IANA zone name into a wall clock.
func Load(name string) (*Clock, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return New(loc), nil
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current instant expressed in the reference zone.
func (c *Clock) Now() time.Time {
	return c.nowFn().In(c.loc)
}

// Today returns the current calendar day in the reference zone.
func (c *Clock) Today() v1.Date {
	return v1.DateOf(c.Now())
}

// DateOf returns the calendar day t falls on in the reference zone.
func (c *Clock) DateOf(t time.Time) v1.Date {
	return v1.DateOf(t.In(c.loc))
}

// DayBounds returns [start, end) of day in the reference zone.
// The span is not always 24h on DST transitions.
func (c *Clock) DayBounds(day v1.Date) (time.Time, time.Time) {
	return day.In(c.loc), day.AddDays(1).In(c.loc)
}
