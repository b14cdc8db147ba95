package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

type Config struct {
	Env     string `env:"APP_ENV" env-default:"dev"`
	GinMode string `env:"GIN_MODE" env-default:"debug"`
	HTTP    HTTPConfig
	DB      DatabaseConfig
}

type HTTPConfig struct {
	Host string `env:"HTTP_HOST" env-default:""`
	Port string `env:"HTTP_PORT" env-default:"8080"`
}

type DatabaseConfig struct {
	Driver   string `env:"DB_DRIVER" env-default:"mysql"`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"3306"`
	User     string `env:"DB_USER" env-default:"taskuser"`
	Password string `env:"DB_PASSWORD" env-default:"taskpassword"`
	Name     string `env:"DB_NAME" env-default:"task_management"`
	SSLMode  string `env:"DB_SSL_MODE" env-default:"disable"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}
