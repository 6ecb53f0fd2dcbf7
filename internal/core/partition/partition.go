package partition

import (
	"hash/fnv"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
)

// Key identifies one partition: a single sensor's readings for one calendar day.
// Every read is bounded to one Key, so no query ever scans across days or sensors.
type Key struct {
	SensorID string
	Day      v1.Date
}

// KeyOf returns the partition a reading belongs to.
func KeyOf(r v1.Reading) Key {
	return Key{SensorID: r.SensorID, Day: r.EventDate}
}

func (k Key) String() string {
	return k.SensorID + "/" + k.Day.String()
}

// Lane returns a stable lane index in [0, lanes) for a sensor id.
// Same sensor always maps to the same lane, which keeps one sensor's queued
// work in submission order. Uses FNV-32a.
func Lane(sensorID string, lanes int) int {
	if lanes <= 1 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(sensorID))
	return int(h.Sum32() % uint32(lanes))
}
