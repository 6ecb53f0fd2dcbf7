package registry

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Memory is an in-memory Registry. Useful for testing and for running
// without a database, seeded from a YAML file.
type Memory struct {
	mu        sync.RWMutex
	sensors   map[string]Sensor
	districts map[string]DistrictProfile
}

// seedFile is the on-disk layout read by LoadFile.
type seedFile struct {
	Sensors   []Sensor          `yaml:"sensors"`
	Districts []DistrictProfile `yaml:"districts"`
}

func NewMemory(sensors []Sensor, districts []DistrictProfile) *Memory {
	m := &Memory{
		sensors:   make(map[string]Sensor, len(sensors)),
		districts: make(map[string]DistrictProfile, len(districts)),
	}
	for _, s := range sensors {
		m.sensors[s.ID] = s
	}
	for _, d := range districts {
		m.districts[districtKey(d.Name)] = d
	}
	return m
}

// LoadFile builds a Memory registry from a YAML seed file:
//
//	sensors:
//	  - sensor_id: 5f0c6a52-...
//	    district_name: Bandung Wetan
//	    energy_source: Solar
//	    status: Active
//	districts:
//	  - district_name: Bandung Wetan
//	    population: 30000
//	    category: Urban
func LoadFile(path string) (*Memory, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse registry file %s: %w", path, err)
	}

	for i, s := range seed.Sensors {
		if strings.TrimSpace(s.ID) == "" {
			return nil, fmt.Errorf("registry file %s: sensor #%d has no sensor_id", path, i)
		}
	}

	return NewMemory(seed.Sensors, seed.Districts), nil
}

// Put adds or replaces a sensor.
func (m *Memory) Put(s Sensor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sensors[s.ID] = s
}

func (m *Memory) Exists(_ context.Context, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sensors[id]
	return ok, nil
}

func (m *Memory) Get(_ context.Context, id string) (Sensor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sensors[id]
	if !ok {
		return Sensor{}, fmt.Errorf("%w: %s", ErrSensorNotFound, id)
	}
	return s, nil
}

func (m *Memory) ListAll(_ context.Context) ([]Sensor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Sensor, 0, len(m.sensors))
	for _, s := range m.sensors {
		out = append(out, s)
	}
	sortSensors(out)
	return out, nil
}

func (m *Memory) ListByDistrict(_ context.Context, district string) ([]Sensor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Sensor, 0)
	for _, s := range m.sensors {
		if strings.EqualFold(s.District, district) {
			out = append(out, s)
		}
	}
	sortSensors(out)
	return out, nil
}

func (m *Memory) Districts(_ context.Context) ([]DistrictProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]DistrictProfile, 0, len(m.districts))
	for _, d := range m.districts {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) District(_ context.Context, name string) (DistrictProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.districts[districtKey(name)]
	if !ok {
		return DistrictProfile{}, fmt.Errorf("%w: %s", ErrDistrictNotFound, name)
	}
	return d, nil
}

func districtKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func sortSensors(sensors []Sensor) {
	sort.Slice(sensors, func(i, j int) bool { return sensors[i].ID < sensors[j].ID })
}
