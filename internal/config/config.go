package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Log  LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type HTTPConfig struct {
	StaticDir        string
	CORSAllowOrigins []string
	ShutdownTimeout  time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

var errInvalidEnv = errors.New("invalid environment variables")

// Load reads the configuration from the environment. Values from a .env file
// in the working directory are applied first without overriding variables
// that are already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	var invalid []string
	opt := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	port := opt("PORT", "3000")
	if n, err := strconv.Atoi(strings.TrimPrefix(port, ":")); err != nil || n < 0 || n > 65535 {
		invalid = append(invalid, "PORT")
	}

	shutdown, err := time.ParseDuration(opt("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil || shutdown <= 0 {
		invalid = append(invalid, "SHUTDOWN_TIMEOUT")
	}

	cfg := Config{
		App: AppConfig{
			AppName:     opt("APP_NAME", "perfect-fit"),
			Environment: opt("APP_ENV", opt("NODE_ENV", "development")),
			HTTPPort:    port,
		},
		HTTP: HTTPConfig{
			StaticDir:        opt("STATIC_DIR", "public"),
			CORSAllowOrigins: splitList(opt("CORS_ALLOW_ORIGINS", "*")),
			ShutdownTimeout:  shutdown,
		},
		Log: LogConfig{
			Level:  opt("LOG_LEVEL", "info"),
			Format: opt("LOG_FORMAT", "console"),
		},
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
