package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR"`
	Port        int    `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"greenpark.db"`
	GinMode     string `env:"GIN_MODE" envDefault:"release"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@greenparkpeyzaj.com"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// AllowNoDB lets the server come up without a database; every query
	// then degrades to an empty result instead of failing.
	AllowNoDB bool `env:"ALLOW_NO_DB" envDefault:"false"`

	Minio MinioConfig `envPrefix:"MINIO_"`
}

// MinioConfig describes the object storage bucket holding site images.
// An empty Endpoint disables uploads.
type MinioConfig struct {
	Endpoint  string `env:"ENDPOINT"`
	Port      int    `env:"PORT" envDefault:"9000"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET" envDefault:"greenpark-images"`
	// PublicURL overrides the URL prefix returned for uploaded objects;
	// defaults to the endpoint itself.
	PublicURL string `env:"PUBLIC_URL"`
}

// Enabled reports whether object storage is configured at all.
func (m MinioConfig) Enabled() bool {
	return m.Endpoint != ""
}

// Addr returns the storage endpoint in host:port form.
func (m MinioConfig) Addr() string {
	return fmt.Sprintf("%s:%d", m.Endpoint, m.Port)
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	if c.ListenAddr != "" {
		return c.ListenAddr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads .env (when present) and parses environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
