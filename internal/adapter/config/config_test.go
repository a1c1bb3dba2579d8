package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(flag.NewFlagSet("test", flag.ContinueOnError), []string{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Database.DSN)
	assert.Equal(t, "localhost:8080", cfg.HTTP.HostString)
	assert.Equal(t, AppModeDevelop, cfg.App.Mode)
	assert.Equal(t, 4, cfg.Tasks.Workers)
	assert.Equal(t, 10*time.Second, cfg.Tasks.Timeout)
	assert.Equal(t, "transaction-final-details", cfg.Broker.KafkaTopic)
}

func TestParse_EnvOverridesFlags(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("TASK_WORKERS", "8")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("FEED_RETRY_PAUSE", "500ms")

	cfg, err := parse(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-a", ":7070", "-d", "postgres://x"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.HostString)
	assert.Equal(t, "postgres://x", cfg.Database.DSN)
	assert.Equal(t, 8, cfg.Tasks.Workers)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Broker.KafkaBrokers)
	assert.Equal(t, 500*time.Millisecond, cfg.Feed.RetryPause)
}

func TestParse_BadEnv(t *testing.T) {
	t.Setenv("TASK_WORKERS", "many")

	_, err := parse(flag.NewFlagSet("test", flag.ContinueOnError), []string{})
	assert.Error(t, err)
}
