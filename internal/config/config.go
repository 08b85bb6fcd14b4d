// ABOUTME: Configuration loader for the admin CLI and TUI
// ABOUTME: Loads settings from environment variables and an optional .env file

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is used when no backend address is configured
const DefaultAPIURL = "http://localhost:8000"

type Config struct {
	// Backend
	APIURL   string
	Timeout  time.Duration // per request, default 30s
	AllProxy string        // ssh+socks5://user@host:port?private-key=/path

	// Session
	SessionFile string // empty means the default config dir location

	// Observability
	MetricsAddr string // TUI only, empty disables the /metrics listener
	LogLevel    string
	LogFormat   string
}

// LoadDotEnv reads the first .env file found among paths into the process
// environment without overriding variables already set. Missing files are
// not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		err := godotenv.Load(path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	cfg := &Config{
		APIURL:      ensureScheme(getEnv("BALUNGPISAH_API_URL", getEnv("NEXT_PUBLIC_API_URL", DefaultAPIURL))),
		AllProxy:    os.Getenv("BALUNGPISAH_ALL_PROXY"),
		SessionFile: os.Getenv("BALUNGPISAH_SESSION_FILE"),
		MetricsAddr: os.Getenv("BALUNGPISAH_METRICS_ADDR"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}

	timeoutSeconds := getEnvInt("BALUNGPISAH_TIMEOUT", 30)
	if timeoutSeconds < 1 || timeoutSeconds > 600 {
		return nil, fmt.Errorf("BALUNGPISAH_TIMEOUT must be between 1 and 600, got %d", timeoutSeconds)
	}
	cfg.Timeout = time.Duration(timeoutSeconds) * time.Second

	if cfg.AllProxy != "" && !strings.Contains(cfg.AllProxy, "socks5://") {
		return nil, fmt.Errorf("BALUNGPISAH_ALL_PROXY must be an ssh+socks5:// URL, got %q", cfg.AllProxy)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// ResolveAPIURL applies a command-line override on top of the loaded value
func (c *Config) ResolveAPIURL(flagValue string) string {
	if flagValue != "" {
		return ensureScheme(flagValue)
	}
	return c.APIURL
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// ensureScheme adds http:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		return "http://" + url
	}
	return url
}
