package aggregation

import (
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"github.com/shopspring/decimal"
)

// CityLabel labels the city-wide rollup.
const CityLabel = "All Districts"

// DailyAggregate folds one sensor's partition for one day.
type DailyAggregate struct {
	SensorID     string
	Day          v1.Date
	TotalUsage   decimal.Decimal // exact sum, unrounded
	MeanVoltage  float64         // 0 when ReadingCount is 0
	ReadingCount int
}

// HasData reports whether the partition held any readings.
func (d DailyAggregate) HasData() bool {
	return d.ReadingCount > 0
}

// RollupStats summarizes a set of sensors for one day.
// Monetary-style fields are rounded half-up to 2 decimal places.
type RollupStats struct {
	Label             string
	Day               v1.Date
	TotalUsage        decimal.Decimal
	SolarRatio        decimal.Decimal // percentage of solar sensors, 0..100
	SensorCount       int
	ActiveSensorCount int
	MeanVoltage       decimal.Decimal // mean of per-sensor means, sensors without data excluded
	SolarUsage        decimal.Decimal
	GridUsage         decimal.Decimal
}

// Bucket is a fixed-width slice of one partition.
type Bucket struct {
	Start        time.Time
	TotalUsage   decimal.Decimal
	MeanVoltage  float64
	MinVoltage   int
	MaxVoltage   int
	ReadingCount int
}
