package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Schnee111/smart-city-monitoring-system/internal/broadcast"
	"github.com/Schnee111/smart-city-monitoring-system/internal/broadcast/kafka"
	"github.com/Schnee111/smart-city-monitoring-system/internal/broadcast/websocket"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/aggregation"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/calendar"
	corecfg "github.com/Schnee111/smart-city-monitoring-system/internal/core/config"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/storage"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/storage/memory"
	"github.com/Schnee111/smart-city-monitoring-system/internal/core/storage/postgres"
	"github.com/Schnee111/smart-city-monitoring-system/internal/ingestion"
	"github.com/Schnee111/smart-city-monitoring-system/internal/migrations"
	"github.com/Schnee111/smart-city-monitoring-system/internal/observability/metrics"
	"github.com/Schnee111/smart-city-monitoring-system/internal/projection"
	"github.com/Schnee111/smart-city-monitoring-system/internal/registry"
	"github.com/Schnee111/smart-city-monitoring-system/internal/server"
	"github.com/Schnee111/smart-city-monitoring-system/internal/timeseries"
)

func main() {
	configPath := flag.String("config", "energy.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"registry", cfg.Registry.Source,
		"timezone", cfg.Calendar.Timezone,
		"codec", cfg.Broadcast.Codec)

	clock, err := calendar.Load(cfg.Calendar.Timezone)
	if err != nil {
		slog.Error("Invalid reference timezone", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Storage
	var (
		store   storage.ReadingStore
		adapter *postgres.Adapter
	)
	if cfg.Database.IsMemory() {
		slog.Warn("Using in-memory reading store; readings are lost on restart")
		store = memory.NewStore()
	} else {
		// 2.1. Run Database Migrations before the adapter validates the schema.
		if err := migrateSchema(cfg.Database); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}

		adapter, err = postgres.NewAdapter(postgres.Options{
			Driver:       cfg.Database.Driver,
			DSN:          cfg.Database.DSN,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			Timeout:      cfg.Storage.Timeout,
		})
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer adapter.Close()
		store = adapter
		metrics.RegisterDBStats(adapter.DB(), "energy")
	}

	// 3. Initialize Sensor Registry
	reg, err := buildRegistry(cfg, adapter)
	if err != nil {
		slog.Error("Failed to initialize sensor registry", "error", err)
		os.Exit(1)
	}

	// 4. Initialize Broadcast transports
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	codec, err := broadcast.NewCodec(cfg.Broadcast.Codec)
	if err != nil {
		slog.Error("Invalid broadcast codec", "error", err)
		os.Exit(1)
	}

	var (
		transports broadcast.Multi
		hub        *websocket.Hub
		closers    []io.Closer
	)
	if cfg.Broadcast.Websocket.Enabled {
		hub = websocket.NewHub(cfg.Broadcast.Websocket.SendBuffer, codec.Binary())
		go hub.Run(ctx)
		transports = append(transports, hub)
	}
	if cfg.Broadcast.Kafka.Enabled {
		kp, err := kafka.NewPublisher(kafka.Config{
			Brokers:     cfg.Broadcast.Kafka.Brokers,
			TopicPrefix: cfg.Broadcast.Kafka.TopicPrefix,
		})
		if err != nil {
			slog.Error("Failed to initialize kafka publisher", "error", err)
			os.Exit(1)
		}
		closers = append(closers, kp)
		transports = append(transports, kp)
	}

	var publisher broadcast.Publisher = broadcast.Discard{}
	if len(transports) > 0 {
		publisher = transports
	}
	fanout := broadcast.NewFanout(publisher, codec, cfg.Broadcast.Timeout)

	slog.Info("Broadcast fanout initialized",
		"websocket", cfg.Broadcast.Websocket.Enabled,
		"kafka", cfg.Broadcast.Kafka.Enabled,
		"codec", codec.Name())

	// 5. Initialize Ingestion
	writer := ingestion.NewWriter(store, fanout, clock, ingestion.Options{
		Workers:        cfg.Ingest.Workers,
		QueueSize:      cfg.Ingest.QueueSize,
		EnqueueTimeout: cfg.Ingest.EnqueueTimeout,
	})
	ingestionSvc := ingestion.NewService(writer, reg, cfg.Server.MaxBodySizeMB)

	// 6. Initialize Projection (query API)
	reader := timeseries.NewReader(store, clock)
	engine := aggregation.NewEngine(reader, cfg.Aggregation.Concurrency)
	projectionSvc := projection.NewService(reader, engine, reg, clock)

	// 7. Initialize Server
	var accessLog io.Writer
	if cfg.Server.AccessLog {
		accessLog = os.Stdout
	}
	srv := server.New(server.Options{
		Addr:            fmtAddr(cfg.Server.Host, cfg.Server.Port),
		Mode:            cfg.Server.Mode,
		CORSOrigins:     cfg.Server.CORSOrigins,
		AccessLog:       accessLog,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, adapterDB(adapter))
	ingestionSvc.RegisterRoutes(srv.Engine)
	projectionSvc.RegisterRoutes(srv.Engine)
	if hub != nil {
		srv.MountWebsocket(hub.ServeWS)
	}

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		cancel()
	}

	// 8. Drain queued async writes before closing transports and the pool.
	drainCtx, drainCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer drainCancel()
	if err := writer.Close(drainCtx); err != nil {
		slog.Error("Ingestion queue not fully drained", "error", err)
	}
	for _, c := range closers {
		if err := c.Close(); err != nil {
			slog.Error("Failed to close broadcast transport", "error", err)
		}
	}

	slog.Info("Shutdown complete")
}

// migrateSchema runs migrations on a short-lived pool of its own.
func migrateSchema(cfg corecfg.DatabaseConfig) error {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	return migrations.RunMigrations(db, cfg.AutoMigrate)
}

func buildRegistry(cfg *corecfg.Config, adapter *postgres.Adapter) (registry.Registry, error) {
	var base registry.Registry
	switch cfg.Registry.Source {
	case "file":
		m, err := registry.LoadFile(cfg.Registry.Path)
		if err != nil {
			return nil, err
		}
		base = m
	default:
		base = registry.NewPostgres(adapter.DB(), cfg.Storage.Timeout)
	}

	slog.Info("Sensor registry initialized",
		"source", cfg.Registry.Source,
		"cache_size", cfg.Registry.CacheSize,
		"cache_ttl", cfg.Registry.CacheTTL)

	if cfg.Registry.CacheSize == 0 {
		return base, nil
	}
	return registry.NewCached(base, cfg.Registry.CacheSize, cfg.Registry.CacheTTL), nil
}

func adapterDB(adapter *postgres.Adapter) *sql.DB {
	if adapter == nil {
		return nil
	}
	return adapter.DB()
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
