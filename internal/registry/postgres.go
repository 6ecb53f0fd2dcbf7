package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	querySensorExists = `
		SELECT EXISTS (SELECT 1 FROM sensors WHERE sensor_id = $1)
	`

	querySensorByID = `
		SELECT sensor_id, district_name, energy_source, status, latitude, longitude
		FROM sensors
		WHERE sensor_id = $1
	`

	queryAllSensors = `
		SELECT sensor_id, district_name, energy_source, status, latitude, longitude
		FROM sensors
		ORDER BY sensor_id
	`

	querySensorsByDistrict = `
		SELECT sensor_id, district_name, energy_source, status, latitude, longitude
		FROM sensors
		WHERE lower(district_name) = lower($1)
		ORDER BY sensor_id
	`

	queryAllDistricts = `
		SELECT district_name, population, category
		FROM district_profiles
		ORDER BY district_name
	`

	queryDistrictByName = `
		SELECT district_name, population, category
		FROM district_profiles
		WHERE lower(district_name) = lower($1)
	`
)

// Postgres reads the sensors and district_profiles tables.
// The pool is shared with the reading store and owned by the caller.
type Postgres struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgres(db *sql.DB, timeout time.Duration) *Postgres {
	if db == nil {
		panic("registry: nil db")
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Postgres{db: db, timeout: timeout}
}

func (p *Postgres) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var exists bool
	if err := p.db.QueryRowContext(ctx, querySensorExists, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check sensor %s: %w", id, err)
	}
	return exists, nil
}

func (p *Postgres) Get(ctx context.Context, id string) (Sensor, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	s, err := scanSensor(p.db.QueryRowContext(ctx, querySensorByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Sensor{}, fmt.Errorf("%w: %s", ErrSensorNotFound, id)
	}
	if err != nil {
		return Sensor{}, fmt.Errorf("failed to get sensor %s: %w", id, err)
	}
	return s, nil
}

func (p *Postgres) ListAll(ctx context.Context) ([]Sensor, error) {
	return p.listSensors(ctx, queryAllSensors)
}

func (p *Postgres) ListByDistrict(ctx context.Context, district string) ([]Sensor, error) {
	return p.listSensors(ctx, querySensorsByDistrict, district)
}

func (p *Postgres) listSensors(ctx context.Context, query string, args ...interface{}) ([]Sensor, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sensors: %w", err)
	}
	defer rows.Close()

	sensors := make([]Sensor, 0)
	for rows.Next() {
		s, err := scanSensor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sensor row: %w", err)
		}
		sensors = append(sensors, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sensors: %w", err)
	}
	return sensors, nil
}

func (p *Postgres) Districts(ctx context.Context) ([]DistrictProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	rows, err := p.db.QueryContext(ctx, queryAllDistricts)
	if err != nil {
		return nil, fmt.Errorf("failed to list districts: %w", err)
	}
	defer rows.Close()

	districts := make([]DistrictProfile, 0)
	for rows.Next() {
		var d DistrictProfile
		if err := rows.Scan(&d.Name, &d.Population, &d.Category); err != nil {
			return nil, fmt.Errorf("failed to scan district row: %w", err)
		}
		districts = append(districts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating districts: %w", err)
	}
	return districts, nil
}

func (p *Postgres) District(ctx context.Context, name string) (DistrictProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var d DistrictProfile
	err := p.db.QueryRowContext(ctx, queryDistrictByName, name).Scan(&d.Name, &d.Population, &d.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return DistrictProfile{}, fmt.Errorf("%w: %s", ErrDistrictNotFound, name)
	}
	if err != nil {
		return DistrictProfile{}, fmt.Errorf("failed to get district %s: %w", name, err)
	}
	return d, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSensor(row rowScanner) (Sensor, error) {
	var (
		s        Sensor
		lat, lon sql.NullFloat64
	)
	if err := row.Scan(&s.ID, &s.District, &s.EnergySource, &s.Status, &lat, &lon); err != nil {
		return Sensor{}, err
	}
	s.Latitude = lat.Float64
	s.Longitude = lon.Float64
	return s, nil
}
