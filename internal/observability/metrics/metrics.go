package metrics

import (
	"database/sql"
	"errors"
	"time"

	coreerr "github.com/Schnee111/smart-city-monitoring-system/internal/core/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricPrefix = "energy_"

var (
	ingestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "ingest_total",
			Help: "Readings submitted to the ingestion writer, by mode and outcome.",
		},
		[]string{"mode", "result"},
	)
	ingestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    metricPrefix + "ingest_duration_seconds",
			Help:    "Time from submission to persisted reading.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)
	ingestQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: metricPrefix + "ingest_queue_depth",
			Help: "Async submissions accepted but not yet written.",
		},
	)

	storeOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "store_operations_total",
			Help: "Reading store calls, by operation and outcome.",
		},
		[]string{"op", "result"},
	)
	storeDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    metricPrefix + "store_duration_seconds",
			Help:    "Reading store call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	fanoutPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "fanout_published_total",
			Help: "Readings handed to the pub/sub transport, by topic kind.",
		},
		[]string{"topic"},
	)
	fanoutFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "fanout_failures_total",
			Help: "Best-effort publishes that failed and were dropped, by topic kind.",
		},
		[]string{"topic"},
	)

	rollupDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    metricPrefix + "rollup_duration_seconds",
			Help:    "Rollup computation latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)
)

// ObserveIngest records one finished submission.
func ObserveIngest(mode string, err error, dur time.Duration) {
	ingestTotal.WithLabelValues(mode, resultLabel(err)).Inc()
	if err == nil {
		ingestDurationSeconds.WithLabelValues(mode).Observe(dur.Seconds())
	}
}

// QueueEntered and QueueLeft track the async backlog.
func QueueEntered() { ingestQueueDepth.Inc() }
func QueueLeft()    { ingestQueueDepth.Dec() }

// ObserveStore records one store round-trip.
func ObserveStore(op string, err error, dur time.Duration) {
	storeOpsTotal.WithLabelValues(op, resultLabel(err)).Inc()
	storeDurationSeconds.WithLabelValues(op).Observe(dur.Seconds())
}

// FanoutPublished and FanoutFailed take a topic kind ("sensor" or "all"),
// never the raw topic, to keep label cardinality bounded.
func FanoutPublished(kind string) { fanoutPublishedTotal.WithLabelValues(kind).Inc() }
func FanoutFailed(kind string)    { fanoutFailuresTotal.WithLabelValues(kind).Inc() }

func ObserveRollup(err error, dur time.Duration) {
	rollupDurationSeconds.WithLabelValues(resultLabel(err)).Observe(dur.Seconds())
}

// RegisterDBStats exports connection pool statistics for db.
func RegisterDBStats(db *sql.DB, dbName string) {
	if db == nil {
		return
	}
	prometheus.MustRegister(collectors.NewDBStatsCollector(db, dbName))
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, coreerr.ErrInvalidReading):
		return "invalid"
	case errors.Is(err, coreerr.ErrStorageRejected):
		return "rejected"
	case errors.Is(err, coreerr.ErrStorageUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
