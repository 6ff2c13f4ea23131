package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the service.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	Archive     ArchiveConfig
	AI          AIConfig
	Auth        AuthConfig
	Logger      LoggerConfig
}

type HTTPConfig struct {
	Port string
}

type ArchiveConfig struct {
	// Path to the local bbolt archive file holding the four record stores.
	Path string
}

type AIConfig struct {
	APIKey string
	Model  string
	// MockMode replaces the Gemini client with canned responses. Defaults
	// to true when no API key is configured so the service boots anywhere.
	MockMode bool
}

type AuthConfig struct {
	// Placeholder credential gate; not a security mechanism.
	AdminUser  string
	AdminPass  string
	SessionTTL time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies defaults so the service can boot with nothing set.
func Load() *Config {
	_ = godotenv.Load(".env")

	apiKey := os.Getenv("GEMINI_API_KEY")

	return &Config{
		AppName:     getString("APP_NAME", "delta33-backoffice"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Port: getString("SERVER_PORT", "8080"),
		},
		Archive: ArchiveConfig{
			Path: getString("ARCHIVE_PATH", "data/delta33.db"),
		},
		AI: AIConfig{
			APIKey:   apiKey,
			Model:    getString("GEMINI_MODEL", "gemini-2.5-flash"),
			MockMode: getBool("AI_MOCK", apiKey == ""),
		},
		Auth: AuthConfig{
			AdminUser:  getString("ADMIN_USER", "admin"),
			AdminPass:  getString("ADMIN_PASS", "1234"),
			SessionTTL: getDuration("SESSION_TTL", 12*time.Hour),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
	}
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
