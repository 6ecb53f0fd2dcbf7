package v1

import (
	"fmt"
	"strings"
	"time"

	coreerr "github.com/Schnee111/smart-city-monitoring-system/internal/core/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reading is one sensor's measurement at one instant.
// (SensorID, EventDate, RecordedAt) orders readings inside a partition; the
// store keeps duplicates at the same timestamp.
type Reading struct {
	// SensorID is owned by the external sensor registry. The core treats it as opaque.
	SensorID string `json:"sensor_id"`

	// EventDate is the calendar day of RecordedAt in the reference time zone.
	// Stamped by the ingestion writer when absent.
	EventDate Date `json:"event_date"`

	// RecordedAt is the server-side instant of the reading.
	RecordedAt time.Time `json:"recorded_at"`

	// Usage is additive and non-negative. Exact decimal, never a float.
	Usage decimal.Decimal `json:"usage"`

	// Voltage is only ever averaged.
	Voltage int `json:"voltage"`
}

// Validate rejects readings that must never reach the store.
func (r *Reading) Validate() error {
	if strings.TrimSpace(r.SensorID) == "" {
		return coreerr.InvalidReadingf("sensor_id is required")
	}
	if r.Usage.IsNegative() {
		return coreerr.InvalidReadingf("usage must not be negative, got %s", r.Usage.String())
	}
	return nil
}

// IngestRequest is the inbound shape accepted by the ingestion API.
// Pointers distinguish "missing" from zero values.
type IngestRequest struct {
	SensorID   string           `json:"sensor_id"`
	Usage      *decimal.Decimal `json:"usage"`
	Voltage    *int             `json:"voltage"`
	RecordedAt *time.Time       `json:"recorded_at,omitempty"`
}

// Validate checks the request envelope. Sensor ids are UUIDs on the wire.
func (r *IngestRequest) Validate() error {
	if r.SensorID == "" {
		return coreerr.InvalidReadingf("sensor_id is required")
	}
	if _, err := uuid.Parse(r.SensorID); err != nil {
		return coreerr.InvalidReadingf("sensor_id %q is not a valid UUID", r.SensorID)
	}
	if r.Usage == nil {
		return coreerr.InvalidReadingf("usage is required")
	}
	if r.Voltage == nil {
		return coreerr.InvalidReadingf("voltage is required")
	}
	return nil
}

// Reading converts the request into an unstamped Reading.
func (r *IngestRequest) Reading() Reading {
	reading := Reading{SensorID: r.SensorID}
	if r.Usage != nil {
		reading.Usage = *r.Usage
	}
	if r.Voltage != nil {
		reading.Voltage = *r.Voltage
	}
	if r.RecordedAt != nil {
		reading.RecordedAt = *r.RecordedAt
	}
	return reading
}

// ReadingResponse is the outbound shape for a single reading, used by the
// query API and as the broadcast payload.
type ReadingResponse struct {
	SensorID   string          `json:"sensor_id"`
	Usage      decimal.Decimal `json:"usage"`
	Voltage    int             `json:"voltage"`
	RecordedAt time.Time       `json:"recorded_at"`
	EventDate  Date            `json:"event_date"`
}

func NewReadingResponse(r Reading) ReadingResponse {
	return ReadingResponse{
		SensorID:   r.SensorID,
		Usage:      r.Usage,
		Voltage:    r.Voltage,
		RecordedAt: r.RecordedAt,
		EventDate:  r.EventDate,
	}
}

// NewReadingResponses maps a slice, never returning nil so JSON renders [].
func NewReadingResponses(readings []Reading) []ReadingResponse {
	out := make([]ReadingResponse, 0, len(readings))
	for _, r := range readings {
		out = append(out, NewReadingResponse(r))
	}
	return out
}

func (r Reading) String() string {
	return fmt.Sprintf("%s@%s(%s)", r.SensorID, r.RecordedAt.Format(time.RFC3339Nano), r.Usage.String())
}
