package cfg

import (
	"io"
	"testing"
	"time"

	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/DRSN-tech/products-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logger.Logger {
	return logger.NewSlogLoggerWithOptions(logger.Options{Output: io.Discard})
}

func TestLoadWithDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/shop?sslmode=disable")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PRODUCT_LIST_TTL", "1m")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("KAFKA_BROKERS", "")

	c, err := LoadFromEnv(testLogger())
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/shop?sslmode=disable", c.Db.DSN())
	assert.Equal(t, "9090", c.Http.Port)
	assert.Equal(t, 5*time.Second, c.Http.ReadTimeout)
	assert.Equal(t, time.Minute, c.Redis.ListTTL)
	assert.False(t, c.Redis.Enabled())
	assert.False(t, c.Kafka.Enabled())
	assert.Equal(t, "text", c.Log.Format)
}

func TestLoadBuildsDSNFromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "p@ss")
	t.Setenv("POSTGRES_DB", "products")
	t.Setenv("POSTGRES_HOST", "pg")

	c, err := LoadFromEnv(testLogger())
	require.NoError(t, err)

	assert.Equal(t, "postgres://shop:p%40ss@pg:5432/products?sslmode=disable", c.Db.DSN())
}

func TestLoadRequiresDatabaseSettings(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "")
	t.Setenv("POSTGRES_DB", "")

	_, err := LoadFromEnv(testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
	assert.Contains(t, err.Error(), "POSTGRES_PASSWORD")
	assert.Contains(t, err.Error(), "POSTGRES_DB")
}

func TestLoadOptionalBackends(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/shop")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")

	c, err := LoadFromEnv(testLogger())
	require.NoError(t, err)

	assert.True(t, c.Redis.Enabled())
	assert.True(t, c.Kafka.Enabled())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, "products.changes", c.Kafka.Topic)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/shop")
	t.Setenv("HTTP_READ_TIMEOUT", "soon")

	_, err := LoadFromEnv(testLogger())
	assert.Error(t, err)
}
