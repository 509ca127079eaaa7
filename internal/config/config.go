package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. Values come from the environment; entry
// points load a .env file first via godotenv. A missing OPENAI_API_KEY is a
// recognized degraded state, not a startup failure.
type Config struct {
	Env            string `envconfig:"APP_ENV" default:"development"`
	Port           string `envconfig:"SERVER_PORT" default:"8080"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	OpenAIAPIKey   string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel    string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment config: %w", err)
	}
	return cfg, nil
}
