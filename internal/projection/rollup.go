package projection

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Schnee111/smart-city-monitoring-system/internal/registry"
)

// maxRollupSensors bounds one ad-hoc rollup; each sensor costs a store query.
const maxRollupSensors = 1000

func validateRollupRequest(req RollupRequest) error {
	if strings.TrimSpace(req.Label) == "" {
		return invalidQueryf("label is required")
	}
	if len(req.SensorIDs) > maxRollupSensors {
		return invalidQueryf("at most %d sensor_ids per rollup, got %d", maxRollupSensors, len(req.SensorIDs))
	}
	for _, id := range req.SensorIDs {
		if strings.TrimSpace(id) == "" {
			return invalidQueryf("sensor_ids must not contain empty ids")
		}
	}
	return nil
}

// resolveSensors looks up each id once, keeping request order.
// Ids the registry does not know still count as sensors, with neither the
// solar nor the active attribute.
func (s *Service) resolveSensors(ctx context.Context, ids []string) ([]registry.Sensor, error) {
	seen := make(map[string]struct{}, len(ids))
	sensors := make([]registry.Sensor, 0, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		sensor, err := s.registry.Get(ctx, id)
		switch {
		case errors.Is(err, registry.ErrSensorNotFound):
			sensor = registry.Sensor{ID: id}
		case err != nil:
			return nil, fmt.Errorf("resolve sensor %s: %w", id, err)
		}
		sensors = append(sensors, sensor)
	}
	return sensors, nil
}
