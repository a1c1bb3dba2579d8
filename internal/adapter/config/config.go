package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	App      *App
	Tasks    *Tasks
	Feed     *Feed
	Cache    *Cache
	Broker   *Broker
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel      string        `env:"LOG_LEVEL"`
	Mode          string        `env:"APP_MODE"`
	TokenLifetime time.Duration `env:"TOKEN_LIFETIME"`
	NoticeBuffer  int           `env:"NOTICE_BUFFER"`
}

// Database.DSN empty means the in-memory document store.
type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Tasks struct {
	Workers   int           `env:"TASK_WORKERS"`
	QueueSize int           `env:"TASK_QUEUE"`
	Timeout   time.Duration `env:"TASK_TIMEOUT"`
}

type Feed struct {
	RetryPause time.Duration `env:"FEED_RETRY_PAUSE"`
}

type Cache struct {
	RedisAddress string        `env:"REDIS_ADDRESS"`
	TTL          time.Duration `env:"CATALOG_CACHE_TTL"`
}

type Broker struct {
	AMQPURL      string   `env:"AMQP_URL"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC"`
}

func NewConfig() (*Config, error) {
	return parse(flag.CommandLine, os.Args[1:])
}

func parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var db Database
	var http HTTP
	var app App
	var tasks Tasks
	var feed Feed
	var cache Cache
	var broker Broker

	fs.StringVar(&db.DSN, "d", "", "Database string")
	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.StringVar(&app.LogLevel, "l", `error`, "Log level")
	fs.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	fs.DurationVar(&app.TokenLifetime, "token-lifetime", 12*time.Hour, "Waiter token lifetime")
	fs.IntVar(&app.NoticeBuffer, "notices", 256, "Notifications kept for polling")
	fs.IntVar(&tasks.Workers, "w", 4, "Selection task workers")
	fs.IntVar(&tasks.QueueSize, "q", 64, "Selection task queue size")
	fs.DurationVar(&tasks.Timeout, "t", 10*time.Second, "Selection task timeout")
	fs.DurationVar(&feed.RetryPause, "feed-retry", 3*time.Second, "Pause before resubscribing the order feed")
	fs.StringVar(&cache.RedisAddress, "c", "", "Redis address for the catalog cache")
	fs.DurationVar(&cache.TTL, "cache-ttl", 30*time.Second, "Catalog cache TTL")
	fs.StringVar(&broker.AMQPURL, "amqp", "", "RabbitMQ URL for notice broadcast")
	fs.StringVar(&broker.KafkaTopic, "kafka-topic", "transaction-final-details", "Kafka topic for transactions")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	for name, target := range map[string]any{
		"database": &db,
		"http":     &http,
		"app":      &app,
		"tasks":    &tasks,
		"feed":     &feed,
		"cache":    &cache,
		"broker":   &broker,
	} {
		if err := env.Parse(target); err != nil {
			return nil, fmt.Errorf("error parsing env %s config: %w", name, err)
		}
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		App:      &app,
		Tasks:    &tasks,
		Feed:     &feed,
		Cache:    &cache,
		Broker:   &broker,
	}

	return &config, nil
}
