package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Promotion store backends
const (
	StoreSession  = "session"
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Port string
	Env  string

	APIEndpoint string
	APITimeout  time.Duration

	SessionName   string
	SessionSecret string
	LogDir        string

	PromotionStore        string
	PromotionScope        string
	PromotionDuration     time.Duration
	PromotionMinRemaining time.Duration

	DraftTTL      time.Duration
	GeographyFile string
	RedisURL      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
}

// LoadConfig loads configuration from .env (when present) and environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		APIEndpoint:    strings.TrimRight(getEnv("API_ENDPOINT", "http://localhost:6789"), "/"),
		SessionName:    getEnv("SESSION_NAME", "storefront"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		PromotionStore: strings.ToLower(getEnv("PROMOTION_STORE", StoreSession)),
		PromotionScope: strings.ToLower(getEnv("PROMOTION_SCOPE", "global")),
		GeographyFile:  os.Getenv("GEOGRAPHY_FILE"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "storefront"),
	}

	var err error
	if config.APITimeout, err = getDuration("API_TIMEOUT", 90*time.Second); err != nil {
		return nil, err
	}
	if config.PromotionDuration, err = getDuration("PROMOTION_DURATION", 2*time.Hour+40*time.Minute); err != nil {
		return nil, err
	}
	if config.PromotionMinRemaining, err = getDuration("PROMOTION_MIN_REMAINING", 2*time.Hour+20*time.Minute); err != nil {
		return nil, err
	}
	if config.DraftTTL, err = getDuration("DRAFT_TTL", 2*time.Hour); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	switch c.PromotionStore {
	case StoreSession, StoreMemory, StoreRedis, StorePostgres:
	default:
		return fmt.Errorf("unknown PROMOTION_STORE %q", c.PromotionStore)
	}
	if c.PromotionScope != "global" && c.PromotionScope != "product" {
		return fmt.Errorf("unknown PROMOTION_SCOPE %q", c.PromotionScope)
	}
	if c.PromotionMinRemaining > c.PromotionDuration {
		return fmt.Errorf("PROMOTION_MIN_REMAINING (%v) exceeds PROMOTION_DURATION (%v)", c.PromotionMinRemaining, c.PromotionDuration)
	}
	if c.SessionSecret == "" && c.IsProduction() {
		return fmt.Errorf("SESSION_SECRET is required in production")
	}
	return nil
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// SessionKey returns the cookie signing key, falling back to a development key
func (c *Config) SessionKey() []byte {
	if c.SessionSecret == "" {
		return []byte("storefront-development-secret")
	}
	return []byte(c.SessionSecret)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %v", key, v, err)
	}
	return d, nil
}
