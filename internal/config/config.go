package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds client configuration, resolved from the environment.
type Config struct {
	APIBase        string // Backend base URL, e.g. http://localhost:8000/api
	DataDir        string // Directory for the durable session record
	SessionBackend string // "file" or "sqlite"
	UIAddr         string // Listen address for the web frontend
	LogLevel       string // debug, info, warn, error
	LogFormat      string // text or json
}

// Load resolves configuration from the environment. A .env file in the
// working directory is read first when present; real environment variables
// win over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBase:        envOr("WMS_API_BASE", "http://localhost:8000/api"),
		DataDir:        envOr("WMS_DATA_DIR", defaultDataDir()),
		SessionBackend: envOr("WMS_SESSION_BACKEND", "file"),
		UIAddr:         envOr("WMS_UI_ADDR", ":8080"),
		LogLevel:       envOr("WMS_LOG_LEVEL", "info"),
		LogFormat:      envOr("WMS_LOG_FORMAT", "text"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultDataDir returns ~/.gudang, falling back to the working directory
// when the home directory cannot be resolved.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gudang"
	}
	return filepath.Join(home, ".gudang")
}
