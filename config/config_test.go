package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, ":8084", cfg.Server.GRPCPort)
	assert.Equal(t, "catalog.events", cfg.Kafka.CatalogTopic)
	assert.Equal(t, "inventory.events", cfg.Kafka.EventsTopic)
	assert.Equal(t, "@every 1h", cfg.Jobs.ReconcileSchedule)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("GRPC_PORT", "9000")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "25")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("OTEL_TRACES_SAMPLE_RATIO", "0.25")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := LoadEnv()

	assert.Equal(t, "9000", cfg.Server.GRPCPort)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.True(t, cfg.Server.AutoMigrate)
	assert.InDelta(t, 0.25, cfg.Tracing.SampleRatio, 1e-9)
	assert.Equal(t, 0, cfg.Redis.DB)
}
