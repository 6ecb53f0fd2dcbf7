package aggregation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/partition"
	"github.com/Schnee111/smart-city-monitoring-system/internal/observability/metrics"
	"github.com/Schnee111/smart-city-monitoring-system/internal/registry"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultConcurrency bounds per-sensor aggregate calls inside one rollup.
const DefaultConcurrency = 8

// DayReader is the slice of the time-series reader the engine needs.
type DayReader interface {
	ByDay(ctx context.Context, sensorID string, day v1.Date) ([]v1.Reading, error)
}

// Engine computes daily aggregates and multi-sensor rollups on demand.
// Nothing is materialized: every call reads the partitions it needs.
type Engine struct {
	reader      DayReader
	concurrency int

	// inflight collapses identical concurrent (sensor, day) reads. Results are
	// shared only while the call is running, never cached afterwards.
	inflight singleflight.Group
}

func NewEngine(reader DayReader, concurrency int) *Engine {
	if reader == nil {
		panic("aggregation: nil reader")
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Engine{reader: reader, concurrency: concurrency}
}

// DailyAggregate sums usage and averages voltage over one partition.
//
// Concurrent calls for the same partition share one store read. A caller that
// joins a read already in flight gets that read's snapshot, which may predate
// a write the caller completed just before; the next call sees it.
func (e *Engine) DailyAggregate(ctx context.Context, sensorID string, day v1.Date) (DailyAggregate, error) {
	key := partition.Key{SensorID: sensorID, Day: day}.String()

	// The shared call outlives any single waiter's cancellation; the store
	// timeout still bounds it.
	ch := e.inflight.DoChan(key, func() (interface{}, error) {
		readings, err := e.reader.ByDay(context.WithoutCancel(ctx), sensorID, day)
		if err != nil {
			return nil, err
		}
		return Fold(sensorID, day, readings), nil
	})

	select {
	case <-ctx.Done():
		return DailyAggregate{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return DailyAggregate{}, fmt.Errorf("daily aggregate for %s: %w", key, res.Err)
		}
		return res.Val.(DailyAggregate), nil
	}
}

// Fold reduces readings into a DailyAggregate. The result does not depend on
// the order of readings.
func Fold(sensorID string, day v1.Date, readings []v1.Reading) DailyAggregate {
	agg := DailyAggregate{SensorID: sensorID, Day: day, TotalUsage: decimal.Zero}
	if len(readings) == 0 {
		return agg
	}

	var voltageSum int64
	for _, r := range readings {
		agg.TotalUsage = agg.TotalUsage.Add(r.Usage)
		voltageSum += int64(r.Voltage)
	}
	agg.ReadingCount = len(readings)
	agg.MeanVoltage = float64(voltageSum) / float64(len(readings))
	return agg
}

// Rollup folds the daily aggregates of sensors into one labelled summary.
// Any sensor's storage failure fails the whole rollup; partial stats are never returned.
func (e *Engine) Rollup(ctx context.Context, label string, sensors []registry.Sensor, day v1.Date) (RollupStats, error) {
	start := time.Now()
	stats, err := e.rollup(ctx, label, sensors, day)
	metrics.ObserveRollup(err, time.Since(start))
	if err != nil {
		slog.Warn("[Aggregation] Rollup failed", "label", label, "day", day.String(), "sensors", len(sensors), "error", err)
		return RollupStats{}, err
	}
	return stats, nil
}

func (e *Engine) rollup(ctx context.Context, label string, sensors []registry.Sensor, day v1.Date) (RollupStats, error) {
	stats := RollupStats{
		Label:       label,
		Day:         day,
		TotalUsage:  decimal.Zero,
		SolarRatio:  decimal.Zero,
		MeanVoltage: decimal.Zero,
		SolarUsage:  decimal.Zero,
		GridUsage:   decimal.Zero,
	}
	if len(sensors) == 0 {
		return stats, nil
	}

	aggregates := make([]DailyAggregate, len(sensors))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, s := range sensors {
		g.Go(func() error {
			agg, err := e.DailyAggregate(gctx, s.ID, day)
			if err != nil {
				return err
			}
			aggregates[i] = agg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RollupStats{}, fmt.Errorf("rollup %q: %w", label, err)
	}

	var (
		total, solarUsage, gridUsage = decimal.Zero, decimal.Zero, decimal.Zero
		solarCount, activeCount      int
		meanSum                      float64
		withData                     int
	)
	for i, s := range sensors {
		agg := aggregates[i]
		total = total.Add(agg.TotalUsage)
		if s.IsSolar() {
			solarCount++
			solarUsage = solarUsage.Add(agg.TotalUsage)
		} else {
			gridUsage = gridUsage.Add(agg.TotalUsage)
		}
		if s.IsActive() {
			activeCount++
		}
		if agg.HasData() {
			meanSum += agg.MeanVoltage
			withData++
		}
	}

	stats.SensorCount = len(sensors)
	stats.ActiveSensorCount = activeCount
	stats.TotalUsage = RoundHalfUp(total, DisplayPlaces)
	stats.SolarUsage = RoundHalfUp(solarUsage, DisplayPlaces)
	stats.GridUsage = RoundHalfUp(gridUsage, DisplayPlaces)
	stats.SolarRatio = Percentage(solarCount, len(sensors))
	if withData > 0 {
		stats.MeanVoltage = FloatHalfUp(meanSum/float64(withData), DisplayPlaces)
	}
	return stats, nil
}
