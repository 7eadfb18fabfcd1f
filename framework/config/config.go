package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the typed process configuration, populated once at bootstrap
// from the environment. The discovery inputs (namespaces, name pattern)
// are deliberately not here: they are composition-time code, not runtime
// configuration.
type Config struct {
	App    AppConfig
	Server ServerConfig
	Log    LogConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level string // debug | info | warn | error
}

// Load reads .env (if present) and populates a Config from environment
// variables. Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "hexkit"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:            env("APP_PORT", "8000"),
			ShutdownTimeout: envDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level: env("LOG_LEVEL", "info"),
		},
	}
}

// IsProduction reports whether the process runs with APP_ENV=production.
func (c *Config) IsProduction() bool { return c.App.Env == "production" }

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
