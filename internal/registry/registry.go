package registry

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrSensorNotFound is returned when the registry has no sensor with the given id.
	ErrSensorNotFound = errors.New("sensor not found")

	// ErrDistrictNotFound is returned when no district profile has the given name.
	ErrDistrictNotFound = errors.New("district not found")
)

const (
	EnergySourceSolar = "Solar"
	EnergySourceGrid  = "Grid"

	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Sensor is the registry's view of a metering device.
// The energy core only reads these; CRUD lives outside this service.
type Sensor struct {
	ID           string  `json:"sensor_id" yaml:"sensor_id"`
	District     string  `json:"district_name" yaml:"district_name"`
	EnergySource string  `json:"energy_source" yaml:"energy_source"`
	Status       string  `json:"status" yaml:"status"`
	Latitude     float64 `json:"latitude" yaml:"latitude"`
	Longitude    float64 `json:"longitude" yaml:"longitude"`
}

// IsSolar matches the energy source case-insensitively.
func (s Sensor) IsSolar() bool {
	return strings.EqualFold(strings.TrimSpace(s.EnergySource), EnergySourceSolar)
}

// IsActive matches the status case-insensitively.
func (s Sensor) IsActive() bool {
	return strings.EqualFold(strings.TrimSpace(s.Status), StatusActive)
}

// DistrictProfile is reference data about one district.
type DistrictProfile struct {
	Name       string `json:"district_name" yaml:"district_name"`
	Population int64  `json:"population" yaml:"population"`
	Category   string `json:"category" yaml:"category"`
}

// Registry is the read-only sensor registry consumed by ingestion and stats.
type Registry interface {
	Exists(ctx context.Context, id string) (bool, error)

	// Get returns ErrSensorNotFound for unknown ids.
	Get(ctx context.Context, id string) (Sensor, error)

	ListAll(ctx context.Context) ([]Sensor, error)

	// ListByDistrict returns an empty slice for a district with no sensors.
	ListByDistrict(ctx context.Context, district string) ([]Sensor, error)

	Districts(ctx context.Context) ([]DistrictProfile, error)

	// District returns ErrDistrictNotFound for unknown names.
	District(ctx context.Context, name string) (DistrictProfile, error)
}
