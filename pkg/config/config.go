package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type SourceConfig struct {
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
	Adapter string `json:"adapter"`
}

type Config struct {
	APIKey          string
	ServerPort      string
	Country         string
	CacheTTL        time.Duration
	DebounceDelay   time.Duration
	DefaultPageSize int
	RequestTimeout  time.Duration
	Sources         []SourceConfig
	SourcesFilePath string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		// An empty key is not fatal here: it surfaces to the UI as a
		// configuration error state on the first fetch.
		APIKey:          getEnv("NEWS_API_KEY", ""),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Country:         getEnv("NEWS_COUNTRY", "us"),
		CacheTTL:        getDurationEnv("CACHE_TTL", 5*time.Minute),
		DebounceDelay:   getDurationEnv("DEBOUNCE_DELAY", 900*time.Millisecond),
		DefaultPageSize: getIntEnv("DEFAULT_PAGE_SIZE", 20),
		RequestTimeout:  getDurationEnv("REQUEST_TIMEOUT", 10*time.Second),
		SourcesFilePath: getEnv("SOURCES_FILE_PATH", "config/sources.json"),
	}
	cfg.Sources = loadSources(cfg.SourcesFilePath)
	return cfg
}

func loadSources(path string) []SourceConfig {
	// If path doesn't exist, try fallback for convenience during dev/test if default was used
	if _, err := os.Stat(path); os.IsNotExist(err) && path == "config/sources.json" {
		fallback := "../config/sources.json"
		if _, err := os.Stat(fallback); err == nil {
			path = fallback
		}
	}

	file, err := os.Open(path)
	if err != nil {
		slog.Warn("Could not open sources.json, using default NewsAPI source", "path", path, "error", err)
		return []SourceConfig{
			{
				Name:    "newsapi",
				BaseURL: getEnv("NEWS_API_URL", "https://newsapi.org/v2"),
				Adapter: "newsapi",
			},
		}
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("Failed to close config file", "error", err)
		}
	}()

	var sources []SourceConfig
	if err := json.NewDecoder(file).Decode(&sources); err != nil {
		slog.Error("Error decoding sources.json", "error", err)
		return nil
	}
	return sources
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		// Try parsing as duration string (e.g. "5m", "900ms")
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Try parsing as integer seconds
		if i, err := strconv.Atoi(value); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
