package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds everything the service reads from the environment.
// Loaded once at startup and passed down; never mutated afterwards.
type Config struct {
	Port           string
	APIKey         string
	Model          string // optional override, skips model discovery
	GeminiTimeout  time.Duration
	LogFile        string
	LogLevel       string
	AllowedOrigins []string
}

const placeholderKey = "your_api_key_here"

func Load() (Config, error) {
	cfg := Config{
		Port:           getenvDefault("PORT", "8010"),
		APIKey:         firstNonEmpty(os.Getenv("GOOGLE_API_KEY"), os.Getenv("GEMINI_API_KEY")),
		Model:          os.Getenv("GEMINI_MODEL"),
		GeminiTimeout:  parseDuration(os.Getenv("GEMINI_TIMEOUT"), 30*time.Second),
		LogFile:        os.Getenv("LOG_FILE"),
		LogLevel:       getenvDefault("LOG_LEVEL", "info"),
		AllowedOrigins: parseList(getenvDefault("ALLOWED_ORIGINS", "*")),
	}

	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("missing GOOGLE_API_KEY in environment")
	}
	if cfg.APIKey == placeholderKey || strings.HasPrefix(strings.ToLower(cfg.APIKey), "paste") {
		return Config{}, fmt.Errorf("invalid API key placeholder detected")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseDuration(val string, def time.Duration) time.Duration {
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func parseList(val string) []string {
	parts := strings.Split(val, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
