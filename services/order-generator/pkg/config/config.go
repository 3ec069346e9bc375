package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/muhammadchandra19/orderflow/pkg/postgresql"
	"github.com/muhammadchandra19/orderflow/pkg/redis"
)

// RegistryBackend selects where resting orders of generated flow are tracked.
type RegistryBackend string

const (
	// RegistryMemory keeps the registry in process.
	RegistryMemory RegistryBackend = "memory"
	// RegistryRedis keeps the registry in one Redis hash per instrument.
	RegistryRedis RegistryBackend = "redis"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // .env is optional

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load() // .env is optional

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}

// Config represents the application configuration.
type Config struct {
	App        AppConfig         `envPrefix:"APP_"`
	Postgres   postgresql.Config `envPrefix:"POSTGRES_"`
	Redis      redis.Config      `envPrefix:"REDIS_"`
	Kafka      KafkaConfig       `envPrefix:"KAFKA_"`
	MarketData MarketDataConfig  `envPrefix:"MARKET_DATA_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"order-generator"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	VenueID string `env:"VENUE_ID,required,notEmpty"`
	// Instruments limits generation to these symbols; empty means every listing of the venue.
	Instruments     []string        `env:"INSTRUMENTS" envSeparator:","`
	TickInterval    time.Duration   `env:"TICK_INTERVAL" envDefault:"500ms"`
	Seed            uint64          `env:"SEED" envDefault:"0"`
	RegistryBackend RegistryBackend `env:"REGISTRY_BACKEND" envDefault:"memory"`
	ShutdownTimeout time.Duration   `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// KafkaConfig holds the configuration of the outbound order topic.
type KafkaConfig struct {
	Brokers      []string      `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic        string        `env:"TOPIC" envDefault:"orders"`
	BatchTimeout time.Duration `env:"BATCH_TIMEOUT" envDefault:"10ms"`
}

// MarketDataConfig holds the location of order book snapshots.
type MarketDataConfig struct {
	KeyPrefix string `env:"KEY_PREFIX" envDefault:""`
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if c.App.TickInterval <= 0 {
		return fmt.Errorf("APP_TICK_INTERVAL must be positive, got %s", c.App.TickInterval)
	}

	switch c.App.RegistryBackend {
	case RegistryMemory, RegistryRedis:
	default:
		return fmt.Errorf("unknown APP_REGISTRY_BACKEND %q", c.App.RegistryBackend)
	}

	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS must not be empty")
	}

	return nil
}
