package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	IngestModeDirect = "direct"
	IngestModeQueue  = "queue"

	EventStorePostgres   = "postgres"
	EventStoreClickHouse = "clickhouse"
)

type Config struct {
	Service    Service
	Postgres   Postgres
	ClickHouse ClickHouse
	SQS        SQS
	NATS       NATS
	Consumer   Consumer
}

type Service struct {
	Environment      string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	APIPort          string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host             string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
	DefaultOwnerSlug string `envconfig:"DEFAULT_OWNER_SLUG"`
	IngestMode       string `envconfig:"INGEST_MODE" default:"direct"`
	EventStore       string `envconfig:"EVENT_STORE" default:"postgres"`
}

type Postgres struct {
	URL                string `envconfig:"DATABASE_URL" required:"true"`
	MaxOpenConns       int    `envconfig:"DATABASE_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns       int    `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetimeSec int    `envconfig:"DATABASE_CONN_MAX_LIFETIME_SEC" default:"300"`
}

type ClickHouse struct {
	Host            string `envconfig:"CLICKHOUSE_HOST"`
	Port            string `envconfig:"CLICKHOUSE_PORT" default:"9000"`
	Database        string `envconfig:"CLICKHOUSE_DB" default:"quicklink"`
	User            string `envconfig:"CLICKHOUSE_USER" default:""`
	Password        string `envconfig:"CLICKHOUSE_PASSWORD" default:""`
	UseTLS          bool   `envconfig:"CLICKHOUSE_USE_TLS" default:"false"`
	MaxOpenConns    int    `envconfig:"CLICKHOUSE_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int    `envconfig:"CLICKHOUSE_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime int    `envconfig:"CLICKHOUSE_CONN_MAX_LIFETIME_SEC" default:"3600"`
}

type SQS struct {
	Endpoint string `envconfig:"SQS_ENDPOINT"`
	QueueURL string `envconfig:"SQS_QUEUE_URL"`
	Region   string `envconfig:"SQS_REGION" default:"us-east-1"`
}

type NATS struct {
	URL     string `envconfig:"NATS_URL"`
	Subject string `envconfig:"NATS_SUBJECT" default:"quicklink.analytics.recorded"`
}

type Consumer struct {
	BatchSizeMax    int    `envconfig:"CONSUMER_BATCH_SIZE_MAX" default:"500"`
	BatchTimeoutSec int    `envconfig:"CONSUMER_BATCH_TIMEOUT_SEC" default:"5"`
	HealthCheckPort string `envconfig:"CONSUMER_HEALTH_CHECK_PORT" default:"8081"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Service.IngestMode {
	case IngestModeDirect:
	case IngestModeQueue:
		if c.SQS.QueueURL == "" {
			return fmt.Errorf("SQS_QUEUE_URL is required when INGEST_MODE=%s", IngestModeQueue)
		}
	default:
		return fmt.Errorf("unsupported INGEST_MODE %q (supported: %s, %s)",
			c.Service.IngestMode, IngestModeDirect, IngestModeQueue)
	}

	switch c.Service.EventStore {
	case EventStorePostgres:
	case EventStoreClickHouse:
		if c.ClickHouse.Host == "" {
			return fmt.Errorf("CLICKHOUSE_HOST is required when EVENT_STORE=%s", EventStoreClickHouse)
		}
	default:
		return fmt.Errorf("unsupported EVENT_STORE %q (supported: %s, %s)",
			c.Service.EventStore, EventStorePostgres, EventStoreClickHouse)
	}

	return nil
}
