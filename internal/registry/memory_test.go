package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const seedYAML = `
sensors:
  - sensor_id: s-2
    district_name: Coblong
    energy_source: grid
    status: Inactive
  - sensor_id: s-1
    district_name: Bandung Wetan
    energy_source: SOLAR
    status: active
    latitude: -6.9
    longitude: 107.6
districts:
  - district_name: Coblong
    population: 130000
    category: Residential
  - district_name: Bandung Wetan
    population: 30000
    category: Urban
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	reg, err := LoadFile(path)
	require.NoError(t, err)

	ctx := context.Background()

	all, err := reg.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "s-1", all[0].ID)
	require.True(t, all[0].IsSolar())
	require.True(t, all[0].IsActive())
	require.InDelta(t, -6.9, all[0].Latitude, 1e-9)
	require.False(t, all[1].IsSolar())
	require.False(t, all[1].IsActive())

	byDistrict, err := reg.ListByDistrict(ctx, "bandung wetan")
	require.NoError(t, err)
	require.Len(t, byDistrict, 1)

	districts, err := reg.Districts(ctx)
	require.NoError(t, err)
	require.Equal(t, "Bandung Wetan", districts[0].Name)
	require.Equal(t, int64(130000), districts[1].Population)

	d, err := reg.District(ctx, "COBLONG")
	require.NoError(t, err)
	require.Equal(t, "Residential", d.Category)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read registry file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sensors: [unterminated"), 0o600))
	_, err = LoadFile(bad)
	require.ErrorContains(t, err, "failed to parse registry file")

	noID := filepath.Join(t.TempDir(), "noid.yaml")
	require.NoError(t, os.WriteFile(noID, []byte("sensors:\n  - district_name: X\n"), 0o600))
	_, err = LoadFile(noID)
	require.ErrorContains(t, err, "has no sensor_id")
}

func TestMemory_NotFound(t *testing.T) {
	reg := NewMemory(nil, nil)
	ctx := context.Background()

	_, err := reg.Get(ctx, "ghost")
	require.ErrorIs(t, err, ErrSensorNotFound)

	exists, err := reg.Exists(ctx, "ghost")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = reg.District(ctx, "Nowhere")
	require.ErrorIs(t, err, ErrDistrictNotFound)

	sensors, err := reg.ListByDistrict(ctx, "Nowhere")
	require.NoError(t, err)
	require.NotNil(t, sensors)
	require.Empty(t, sensors)

	reg.Put(Sensor{ID: "ghost"})
	exists, err = reg.Exists(ctx, "ghost")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestSensor_Attributes(t *testing.T) {
	tests := []struct {
		name       string
		sensor     Sensor
		wantSolar  bool
		wantActive bool
	}{
		{name: "canonical", sensor: Sensor{EnergySource: "Solar", Status: "Active"}, wantSolar: true, wantActive: true},
		{name: "lower case", sensor: Sensor{EnergySource: "solar", Status: "active"}, wantSolar: true, wantActive: true},
		{name: "padded", sensor: Sensor{EnergySource: " Solar ", Status: "ACTIVE "}, wantSolar: true, wantActive: true},
		{name: "grid inactive", sensor: Sensor{EnergySource: "Grid", Status: "Inactive"}},
		{name: "unknown", sensor: Sensor{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wantSolar, tc.sensor.IsSolar())
			require.Equal(t, tc.wantActive, tc.sensor.IsActive())
		})
	}
}
