package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultPort matches the port the service has always listened on
	DefaultPort = "3000"
)

type Config struct {
	Port        string
	Environment string
	// Debug enables logging of date parse failures. It never changes responses.
	Debug          bool
	AllowedOrigins []string
	MetricsEnabled bool
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", DefaultPort),
		Environment:    getEnv("ENVIRONMENT", "development"),
		Debug:          getEnvTruthy("DEBUG"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvTruthy(key string) bool {
	return IsTruthy(os.Getenv(key))
}

// IsTruthy treats any non-empty value as enabled except the usual
// spellings of false.
func IsTruthy(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	switch strings.ToLower(value) {
	case "false", "0", "no", "off":
		return false
	}
	return true
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
