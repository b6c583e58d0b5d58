package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string   `env:"PORT" env-default:"8080"`
	DatabaseURL string   `env:"DATABASE_URL"`
	DBHost      string   `env:"DB_HOST" env-default:"localhost"`
	DBPort      string   `env:"DB_PORT" env-default:"5432"`
	DBUser      string   `env:"DB_USER" env-default:"postgres"`
	DBPassword  string   `env:"DB_PASSWORD"`
	DBName      string   `env:"DB_NAME" env-default:"dollwigs"`
	JWTSecret   string   `env:"JWT_SECRET" env-required:"true"`
	AdminAPIKey string   `env:"ADMIN_API_KEY" env-required:"true"`
	CORSOrigins []string `env:"CORS_ORIGINS" env-default:"*"`
}

// Load reads .env if present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// DSN prefers DATABASE_URL, falling back to the individual DB_* parts.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
