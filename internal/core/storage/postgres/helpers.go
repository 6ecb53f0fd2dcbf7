package postgres

import (
	"database/sql"
	"fmt"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanReadingRow scans one energy_readings row.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanReadingRow(row scanner) (v1.Reading, error) {
	var r v1.Reading
	err := row.Scan(
		&r.SensorID,
		&r.EventDate,
		&r.RecordedAt,
		&r.Usage,
		&r.Voltage,
	)
	if err != nil {
		return v1.Reading{}, fmt.Errorf("failed to scan reading row: %w", err)
	}
	return r, nil
}

// collectReadings drains rows into a non-nil slice.
func collectReadings(rows *sql.Rows) ([]v1.Reading, error) {
	readings := make([]v1.Reading, 0)
	for rows.Next() {
		r, err := scanReadingRow(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating readings: %w", err)
	}
	return readings, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
