package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Redis    RedisConfig    `yaml:"redis"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Auth     AuthConfig     `yaml:"auth"`
	Store    StoreConfig    `yaml:"store"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// RedisConfig selects the persistence backend. An empty Addr runs the
// store in process memory.
type RedisConfig struct {
	Addr string `yaml:"addr"`
}

// RabbitMQConfig enables the cross-instance notification fanout. An
// empty URL keeps notifications in-process only.
type RabbitMQConfig struct {
	URL string `yaml:"url"`
}

// AuthConfig points at the external identity backend. An empty DSN
// selects the built-in fallback credential.
type AuthConfig struct {
	PostgresDSN string `yaml:"postgres_dsn"`
}

type StoreConfig struct {
	// HoursPollInterval is how often the open/closed state is
	// re-evaluated.
	HoursPollInterval time.Duration `yaml:"hours_poll_interval"`
}

// Load reads the YAML config file if present, then applies environment
// overrides. A missing file is not an error: every field has a
// default or env source.
func Load(path string) (*Config, error) {
	cfg := &Config{
		HTTP:  HTTPConfig{Addr: ":8080"},
		Store: StoreConfig{HoursPollInterval: time.Minute},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.HTTP.Addr = getenv("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.Redis.Addr = getenv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.RabbitMQ.URL = getenv("RABBITMQ_URL", cfg.RabbitMQ.URL)
	cfg.Auth.PostgresDSN = getenv("AUTH_POSTGRES_DSN", cfg.Auth.PostgresDSN)

	if cfg.Store.HoursPollInterval <= 0 {
		cfg.Store.HoursPollInterval = time.Minute
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
