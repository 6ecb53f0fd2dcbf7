package projection

import (
	"encoding/json"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/aggregation"
	"github.com/Schnee111/smart-city-monitoring-system/internal/registry"
	"github.com/shopspring/decimal"
)

// HistoryQuery selects readings of one sensor on one day.
type HistoryQuery struct {
	SensorID    string
	Day         v1.Date    // zero means today
	From        *time.Time // nil bounds are open
	To          *time.Time
	Granularity string // "raw" (default) or a duration such as "1h"
}

// BucketValue is one fixed-width window of a day.
type BucketValue struct {
	WindowStart  time.Time       `json:"window_start"`
	WindowEnd    time.Time       `json:"window_end"`
	TotalUsage   decimal.Decimal `json:"total_usage"`
	MeanVoltage  json.Number     `json:"mean_voltage"`
	MinVoltage   int             `json:"min_voltage"`
	MaxVoltage   int             `json:"max_voltage"`
	ReadingCount int             `json:"reading_count"`
}

// HistoryResponse carries raw readings (newest first) or buckets (oldest first),
// depending on the requested granularity.
type HistoryResponse struct {
	SensorID    string               `json:"sensor_id"`
	Date        v1.Date              `json:"date"`
	Granularity string               `json:"granularity"`
	Readings    []v1.ReadingResponse `json:"readings,omitempty"`
	Buckets     []BucketValue        `json:"buckets,omitempty"`
}

// DailyTotalResponse is one sensor's DailyAggregate.
type DailyTotalResponse struct {
	SensorID     string          `json:"sensor_id"`
	Date         v1.Date         `json:"date"`
	TotalUsage   decimal.Decimal `json:"total_usage"`
	MeanVoltage  json.Number     `json:"mean_voltage"`
	ReadingCount int             `json:"reading_count"`
}

// RollupRequest is the body of POST /v1/stats/rollup.
type RollupRequest struct {
	SensorIDs []string `json:"sensor_ids"`
	Date      v1.Date  `json:"date"`
	Label     string   `json:"label"`
}

// StatsResponse renders RollupStats with fixed two-decimal numbers.
type StatsResponse struct {
	Label             string      `json:"label"`
	Date              v1.Date     `json:"date"`
	TotalUsage        json.Number `json:"total_usage"`
	SolarRatio        json.Number `json:"solar_ratio"`
	SensorCount       int         `json:"sensor_count"`
	ActiveSensorCount int         `json:"active_sensor_count"`
	MeanVoltage       json.Number `json:"mean_voltage"`
	SolarUsage        json.Number `json:"solar_usage"`
	GridUsage         json.Number `json:"grid_usage"`
}

// DistrictResponse is a district profile as served by the stats API.
type DistrictResponse struct {
	Name       string `json:"district_name"`
	Population int64  `json:"population"`
	Category   string `json:"category"`
}

func newStatsResponse(s aggregation.RollupStats) *StatsResponse {
	return &StatsResponse{
		Label:             s.Label,
		Date:              s.Day,
		TotalUsage:        fixed(s.TotalUsage),
		SolarRatio:        fixed(s.SolarRatio),
		SensorCount:       s.SensorCount,
		ActiveSensorCount: s.ActiveSensorCount,
		MeanVoltage:       fixed(s.MeanVoltage),
		SolarUsage:        fixed(s.SolarUsage),
		GridUsage:         fixed(s.GridUsage),
	}
}

func newDailyTotalResponse(a aggregation.DailyAggregate) *DailyTotalResponse {
	return &DailyTotalResponse{
		SensorID:     a.SensorID,
		Date:         a.Day,
		TotalUsage:   a.TotalUsage,
		MeanVoltage:  fixed(aggregation.FloatHalfUp(a.MeanVoltage, aggregation.DisplayPlaces)),
		ReadingCount: a.ReadingCount,
	}
}

func newBucketValues(buckets []aggregation.Bucket, width time.Duration) []BucketValue {
	values := make([]BucketValue, 0, len(buckets))
	for _, b := range buckets {
		values = append(values, BucketValue{
			WindowStart:  b.Start,
			WindowEnd:    b.Start.Add(width),
			TotalUsage:   b.TotalUsage,
			MeanVoltage:  fixed(aggregation.FloatHalfUp(b.MeanVoltage, aggregation.DisplayPlaces)),
			MinVoltage:   b.MinVoltage,
			MaxVoltage:   b.MaxVoltage,
			ReadingCount: b.ReadingCount,
		})
	}
	return values
}

func newDistrictResponses(profiles []registry.DistrictProfile) []DistrictResponse {
	out := make([]DistrictResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, newDistrictResponse(p))
	}
	return out
}

func newDistrictResponse(p registry.DistrictProfile) DistrictResponse {
	return DistrictResponse{Name: p.Name, Population: p.Population, Category: p.Category}
}

// fixed renders d with exactly two decimals, e.g. 50 -> 50.00.
func fixed(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(aggregation.DisplayPlaces))
}
