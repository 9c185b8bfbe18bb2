package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "API_ENDPOINT", "PROMOTION_STORE", "PROMOTION_SCOPE",
		"PROMOTION_DURATION", "PROMOTION_MIN_REMAINING", "DRAFT_TTL", "API_TIMEOUT", "SESSION_SECRET"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:6789", cfg.APIEndpoint)
	assert.Equal(t, StoreSession, cfg.PromotionStore)
	assert.Equal(t, "global", cfg.PromotionScope)
	assert.Equal(t, 2*time.Hour+40*time.Minute, cfg.PromotionDuration)
	assert.Equal(t, 2*time.Hour+20*time.Minute, cfg.PromotionMinRemaining)
	assert.Equal(t, 90*time.Second, cfg.APITimeout)
	assert.Equal(t, 2*time.Hour, cfg.DraftTTL)
	assert.False(t, cfg.IsProduction())
	assert.NotEmpty(t, cfg.SessionKey())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("API_ENDPOINT", "https://api.example.com/")
	t.Setenv("PROMOTION_STORE", "Redis")
	t.Setenv("PROMOTION_SCOPE", "product")
	t.Setenv("PROMOTION_DURATION", "30m")
	t.Setenv("PROMOTION_MIN_REMAINING", "10m")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.APIEndpoint)
	assert.Equal(t, StoreRedis, cfg.PromotionStore)
	assert.Equal(t, "product", cfg.PromotionScope)
	assert.Equal(t, 30*time.Minute, cfg.PromotionDuration)
	assert.Equal(t, []byte("s3cret"), cfg.SessionKey())
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("PROMOTION_DURATION", "forever")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "PROMOTION_DURATION")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			PromotionStore:        StoreMemory,
			PromotionScope:        "global",
			PromotionDuration:     time.Hour,
			PromotionMinRemaining: 30 * time.Minute,
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown store", func(c *Config) { c.PromotionStore = "etcd" }, "PROMOTION_STORE"},
		{"unknown scope", func(c *Config) { c.PromotionScope = "user" }, "PROMOTION_SCOPE"},
		{"floor above duration", func(c *Config) { c.PromotionMinRemaining = 2 * time.Hour }, "PROMOTION_MIN_REMAINING"},
		{"production without secret", func(c *Config) { c.Env = "production" }, "SESSION_SECRET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
