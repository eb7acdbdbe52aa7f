package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":8080"`
	BaseURL       string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	DBHost     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBUser     string `env:"DB_USER" envDefault:"shortlink"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"shortlink"`
	DBName     string `env:"DB_NAME" envDefault:"shortlink"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`

	GeoAPIURL   string        `env:"GEO_API_URL" envDefault:"http://ip-api.com/json"`
	GeoTimeout  time.Duration `env:"GEO_TIMEOUT" envDefault:"2s"`
	GeoCacheTTL time.Duration `env:"GEO_CACHE_TTL" envDefault:"1h"`

	PageSize int `env:"PAGE_SIZE" envDefault:"5"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}
