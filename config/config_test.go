package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, ":8083", cfg.Server.GRPCPort)
	assert.Equal(t, "en", cfg.Catalog.DefaultLanguageCode)
	assert.Equal(t, 1000, cfg.Catalog.VariantGenerationLimit)
	assert.Equal(t, 5*time.Minute, cfg.Catalog.CacheTTL)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_DEFAULT_LANGUAGE", "id")
	t.Setenv("CATALOG_DEFAULT_CHANNEL_ID", "pos")
	t.Setenv("VARIANT_GENERATION_LIMIT", "0")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("KAFKA_TOPIC_PRICES", "prices")
	t.Setenv("ELASTICSEARCH_ENABLED", "false")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := LoadEnv()

	assert.Equal(t, "id", cfg.Catalog.DefaultLanguageCode)
	assert.Equal(t, "pos", cfg.Catalog.DefaultChannelID)
	assert.Zero(t, cfg.Catalog.VariantGenerationLimit)
	assert.Equal(t, 30*time.Second, cfg.Catalog.CacheTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "prices", cfg.Kafka.PricesTopic)
	assert.False(t, cfg.Elastic.Enabled)
	assert.Zero(t, cfg.Redis.DB, "invalid numbers fall back")
}
