package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix scopes environment overrides, e.g. ENERGY_DATABASE__DSN.
const EnvPrefix = "ENERGY_"

// Config represents the top-level application config.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Database    DatabaseConfig    `koanf:"database"`
	Storage     StorageConfig     `koanf:"storage"`
	Calendar    CalendarConfig    `koanf:"calendar"`
	Ingest      IngestConfig      `koanf:"ingest"`
	Aggregation AggregationConfig `koanf:"aggregation"`
	Broadcast   BroadcastConfig   `koanf:"broadcast"`
	Registry    RegistryConfig    `koanf:"registry"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	MaxBodySizeMB   int           `koanf:"max_body_size_mb"`
	Mode            string        `koanf:"mode"` // debug | release
	CORSOrigins     []string      `koanf:"cors_origins"`
	AccessLog       bool          `koanf:"access_log"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Type         string `koanf:"type"`   // postgres | memory
	Driver       string `koanf:"driver"` // postgres (lib/pq) | pgx
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

// IsMemory reports whether readings live in process memory only.
func (c DatabaseConfig) IsMemory() bool {
	return c.Type == "memory"
}

type StorageConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

type CalendarConfig struct {
	Timezone string `koanf:"timezone"`
}

type IngestConfig struct {
	Workers   int `koanf:"workers"`
	QueueSize int `koanf:"queue_size"`

	// EnqueueTimeout is how long an async submission waits for room in its
	// lane before it is rejected as queue full.
	EnqueueTimeout time.Duration `koanf:"enqueue_timeout"`
}

type AggregationConfig struct {
	Concurrency int `koanf:"concurrency"`
}

type BroadcastConfig struct {
	Codec     string          `koanf:"codec"` // json | protobuf
	Timeout   time.Duration   `koanf:"timeout"`
	Websocket WebsocketConfig `koanf:"websocket"`
	Kafka     KafkaConfig     `koanf:"kafka"`
}

type WebsocketConfig struct {
	Enabled    bool `koanf:"enabled"`
	SendBuffer int  `koanf:"send_buffer"`
}

type KafkaConfig struct {
	Enabled     bool     `koanf:"enabled"`
	Brokers     []string `koanf:"brokers"`
	TopicPrefix string   `koanf:"topic_prefix"`
}

type RegistryConfig struct {
	Source    string        `koanf:"source"` // postgres | file
	Path      string        `koanf:"path"`
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	switch c.Database.Type {
	case "postgres":
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required")
		}
		if c.Database.Driver != "postgres" && c.Database.Driver != "pgx" {
			return fmt.Errorf("unsupported database.driver %q (must be postgres or pgx)", c.Database.Driver)
		}
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported database.type %q", c.Database.Type)
	}

	if c.Storage.Timeout <= 0 {
		return fmt.Errorf("storage.timeout must be > 0")
	}
	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("invalid calendar.timezone %q: %w", c.Calendar.Timezone, err)
	}

	if c.Ingest.Workers <= 0 {
		return fmt.Errorf("ingest.workers must be > 0")
	}
	if c.Ingest.QueueSize < c.Ingest.Workers {
		return fmt.Errorf("ingest.queue_size must be >= ingest.workers")
	}
	if c.Ingest.EnqueueTimeout <= 0 {
		return fmt.Errorf("ingest.enqueue_timeout must be > 0")
	}
	if c.Aggregation.Concurrency <= 0 {
		return fmt.Errorf("aggregation.concurrency must be > 0")
	}

	if c.Broadcast.Codec != "json" && c.Broadcast.Codec != "protobuf" {
		return fmt.Errorf("unsupported broadcast.codec %q (must be json or protobuf)", c.Broadcast.Codec)
	}
	if c.Broadcast.Timeout <= 0 {
		return fmt.Errorf("broadcast.timeout must be > 0")
	}
	if c.Broadcast.Websocket.Enabled && c.Broadcast.Websocket.SendBuffer <= 0 {
		return fmt.Errorf("broadcast.websocket.send_buffer must be > 0")
	}
	if c.Broadcast.Kafka.Enabled && len(c.Broadcast.Kafka.Brokers) == 0 {
		return fmt.Errorf("broadcast.kafka.brokers is required when kafka is enabled")
	}

	switch c.Registry.Source {
	case "postgres":
		if c.Database.IsMemory() {
			return fmt.Errorf("registry.source postgres requires database.type postgres")
		}
	case "file":
		if strings.TrimSpace(c.Registry.Path) == "" {
			return fmt.Errorf("registry.path is required")
		}
		if _, err := os.Stat(c.Registry.Path); err != nil {
			return fmt.Errorf("registry.path %q is not accessible: %w", c.Registry.Path, err)
		}
	default:
		return fmt.Errorf("unsupported registry.source %q", c.Registry.Source)
	}
	if c.Registry.CacheSize < 0 {
		return fmt.Errorf("registry.cache_size must be >= 0")
	}

	return nil
}

// Load parses config from defaults, file and env (in that order), then validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                     8080,
		"server.host":                     "0.0.0.0",
		"server.max_body_size_mb":         1,
		"server.mode":                     "release",
		"server.cors_origins":             []string{},
		"server.access_log":               false,
		"server.shutdown_timeout":         "10s",
		"database.type":                   "postgres",
		"database.driver":                 "postgres",
		"database.dsn":                    "",
		"database.max_open_conns":         25,
		"database.max_idle_conns":         25,
		"database.auto_migrate":           true,
		"storage.timeout":                 "3s",
		"calendar.timezone":               "Asia/Jakarta",
		"ingest.workers":                  4,
		"ingest.queue_size":               1024,
		"ingest.enqueue_timeout":          "250ms",
		"aggregation.concurrency":         8,
		"broadcast.codec":                 "json",
		"broadcast.timeout":               "2s",
		"broadcast.websocket.enabled":     true,
		"broadcast.websocket.send_buffer": 64,
		"broadcast.kafka.enabled":         false,
		"broadcast.kafka.brokers":         []string{},
		"broadcast.kafka.topic_prefix":    "energy.readings",
		"registry.source":                 "postgres",
		"registry.path":                   "",
		"registry.cache_size":             1000,
		"registry.cache_ttl":              "1m",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
