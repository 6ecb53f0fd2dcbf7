package projection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/aggregation"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/calendar"
	"github.com/Schnee111/smart-city-monitoring-system/internal/registry"
	"github.com/Schnee111/smart-city-monitoring-system/internal/timeseries"
)

var (
	// ErrInvalidQuery marks request validation errors that should return HTTP 400.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrNoReadings means neither today nor yesterday holds a reading for the sensor.
	ErrNoReadings = errors.New("no readings")
)

// Service implements the query layer: point lookups, day history, daily
// totals and district/city rollups. Everything is recomputed from raw
// readings on every request.
type Service struct {
	reader   *timeseries.Reader
	engine   *aggregation.Engine
	registry registry.Registry
	clock    *calendar.Clock
}

func NewService(reader *timeseries.Reader, engine *aggregation.Engine, reg registry.Registry, clock *calendar.Clock) *Service {
	if reader == nil {
		panic("projection: reader must not be nil")
	}
	if engine == nil {
		panic("projection: engine must not be nil")
	}
	if reg == nil {
		panic("projection: registry must not be nil")
	}
	if clock == nil {
		panic("projection: clock must not be nil")
	}
	return &Service{reader: reader, engine: engine, registry: reg, clock: clock}
}

// Latest returns the newest reading of sensorID, or ErrNoReadings.
func (s *Service) Latest(ctx context.Context, sensorID string) (*v1.ReadingResponse, error) {
	reading, err := s.reader.Latest(ctx, sensorID)
	if err != nil {
		return nil, err
	}
	if reading == nil {
		return nil, ErrNoReadings
	}
	resp := v1.NewReadingResponse(*reading)
	return &resp, nil
}

// History returns one day of readings, optionally narrowed to [From, To] and
// folded into fixed-width buckets.
func (s *Service) History(ctx context.Context, q HistoryQuery) (*HistoryResponse, error) {
	width, err := aggregation.ParseGranularity(q.Granularity)
	if err != nil {
		return nil, invalidQueryf("%v", err)
	}
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return nil, invalidQueryf("start must not be after end")
	}

	day := s.dayOrToday(q.Day)

	var readings []v1.Reading
	if q.From != nil || q.To != nil {
		readings, err = s.reader.ByRange(ctx, q.SensorID, day, q.From, q.To)
	} else {
		readings, err = s.reader.ByDay(ctx, q.SensorID, day)
	}
	if err != nil {
		return nil, fmt.Errorf("history for %s on %s: %w", q.SensorID, day, err)
	}

	resp := &HistoryResponse{
		SensorID:    q.SensorID,
		Date:        day,
		Granularity: aggregation.GranularityRaw,
	}
	if width == 0 {
		resp.Readings = v1.NewReadingResponses(readings)
		return resp, nil
	}

	resp.Granularity = width.String()
	resp.Buckets = newBucketValues(aggregation.FoldBuckets(readings, day, s.clock.Location(), width), width)
	return resp, nil
}

// DailyTotal returns the usage sum and mean voltage of one sensor-day.
func (s *Service) DailyTotal(ctx context.Context, sensorID string, day v1.Date) (*DailyTotalResponse, error) {
	agg, err := s.engine.DailyAggregate(ctx, sensorID, s.dayOrToday(day))
	if err != nil {
		return nil, err
	}
	return newDailyTotalResponse(agg), nil
}

// CityStats rolls up every registered sensor.
func (s *Service) CityStats(ctx context.Context, day v1.Date) (*StatsResponse, error) {
	sensors, err := s.registry.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}
	return s.rollup(ctx, aggregation.CityLabel, sensors, day)
}

// DistrictStats rolls up the sensors of one district. An unknown district
// yields zero-valued stats, not an error.
func (s *Service) DistrictStats(ctx context.Context, district string, day v1.Date) (*StatsResponse, error) {
	sensors, err := s.registry.ListByDistrict(ctx, district)
	if err != nil {
		return nil, fmt.Errorf("list sensors of district %q: %w", district, err)
	}
	return s.rollup(ctx, district, sensors, day)
}

// Rollup aggregates an explicit set of sensors under a caller-chosen label.
func (s *Service) Rollup(ctx context.Context, req RollupRequest) (*StatsResponse, error) {
	if err := validateRollupRequest(req); err != nil {
		return nil, err
	}

	sensors, err := s.resolveSensors(ctx, req.SensorIDs)
	if err != nil {
		return nil, err
	}
	return s.rollup(ctx, req.Label, sensors, req.Date)
}

// Districts lists the district reference profiles.
func (s *Service) Districts(ctx context.Context) ([]DistrictResponse, error) {
	profiles, err := s.registry.Districts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	return newDistrictResponses(profiles), nil
}

// District returns one profile, or registry.ErrDistrictNotFound.
func (s *Service) District(ctx context.Context, name string) (*DistrictResponse, error) {
	profile, err := s.registry.District(ctx, name)
	if err != nil {
		return nil, err
	}
	resp := newDistrictResponse(profile)
	return &resp, nil
}

func (s *Service) rollup(ctx context.Context, label string, sensors []registry.Sensor, day v1.Date) (*StatsResponse, error) {
	day = s.dayOrToday(day)

	stats, err := s.engine.Rollup(ctx, label, sensors, day)
	if err != nil {
		return nil, err
	}

	slog.Debug("[Projection] Rollup computed",
		"label", label,
		"date", day.String(),
		"sensors", stats.SensorCount)
	return newStatsResponse(stats), nil
}

func (s *Service) dayOrToday(day v1.Date) v1.Date {
	if day.IsZero() {
		return s.clock.Today()
	}
	return day
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
