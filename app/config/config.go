package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime settings of the board
type Config struct {
	Addr          string
	DBPath        string
	SessionSecret string
	LogJSON       bool
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to development defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		Addr:          getenv("CORKBOARD_ADDR", ":8080"),
		DBPath:        getenv("CORKBOARD_DB_PATH", "data/badger"),
		SessionSecret: getenv("CORKBOARD_SESSION_SECRET", "dev-only-secret"),
		LogJSON:       os.Getenv("CORKBOARD_LOG_JSON") == "1",
	}

	if cfg.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
