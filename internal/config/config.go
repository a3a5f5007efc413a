// Package config reads planview settings from the environment.
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the host binary's settings.
type Config struct {
	PlanPath     string  // PLAN_PATH, required
	Symbol       string  // PLAN_SYMBOL, chart symbol used to pick the instrument
	PollSchedule string  // PLAN_POLL_SCHEDULE, cron schedule for re-checking the file
	TickSize     float64 // PLAN_TICK_SIZE, price rounding for chart drawings
	Watch        bool    // PLAN_WATCH, keep running and reprint on change
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		PlanPath:     getEnv("PLAN_PATH", ""),
		Symbol:       getEnv("PLAN_SYMBOL", ""),
		PollSchedule: getEnv("PLAN_POLL_SCHEDULE", "@every 2s"),
		TickSize:     getEnvAsFloat("PLAN_TICK_SIZE", 0.25),
		Watch:        getEnvAsBool("PLAN_WATCH", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.PlanPath == "" {
		return errors.New("PLAN_PATH is required")
	}
	if c.TickSize <= 0 {
		return errors.New("PLAN_TICK_SIZE must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
