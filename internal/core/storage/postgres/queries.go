package postgres

// SQL for the energy_readings table.
// Partition key (sensor_id, event_date), clustering key recorded_at DESC:
// see migrations/000001_create_energy_readings.up.sql.

const (
	// queryAppendReading never upserts. Two readings with the same
	// (sensor_id, event_date, recorded_at) are both kept.
	queryAppendReading = `
		INSERT INTO energy_readings (
			sensor_id, event_date, recorded_at, usage, voltage
		)
		VALUES ($1, $2, $3, $4, $5)
	`

	// queryReadingsByDay scans one partition newest first.
	queryReadingsByDay = `
		SELECT sensor_id, event_date, recorded_at, usage, voltage
		FROM energy_readings
		WHERE sensor_id = $1
		  AND event_date = $2
		ORDER BY recorded_at DESC
	`

	// queryReadingsByRange narrows one partition to [from, to]. A NULL bound is open,
	// so a call without bounds degrades to a whole-partition scan.
	queryReadingsByRange = `
		SELECT sensor_id, event_date, recorded_at, usage, voltage
		FROM energy_readings
		WHERE sensor_id = $1
		  AND event_date = $2
		  AND ($3::timestamptz IS NULL OR recorded_at >= $3)
		  AND ($4::timestamptz IS NULL OR recorded_at <= $4)
		ORDER BY recorded_at DESC
	`

	querySchemaExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'energy_readings'
		)
	`
)
