package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "shop")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("MOMO_PARTNER_CODE", "MOMO")
	t.Setenv("MOMO_ACCESS_KEY", "access")
	t.Setenv("MOMO_SECRET_KEY", "secret")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	cfg := New()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "payments", cfg.Kafka.PaymentsTopic)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Coupons.CaseSensitive)
	assert.Equal(t, 1000, cfg.Cache.Capacity)
}

func TestNew_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("COUPONS_CASE_SENSITIVE", "true")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("LOGIN_RATE_LIMIT_RPS", "0.5")
	t.Setenv("CACHE_CAPACITY", "not-a-number")

	cfg := New()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Coupons.CaseSensitive)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 0.5, cfg.RateLimit.LoginRPS)
	assert.Equal(t, 1000, cfg.Cache.Capacity)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown env", env: map[string]string{"ENV": "qa"}},
		{name: "short secret", env: map[string]string{"JWT_SECRET": "short"}},
		{name: "missing db password", env: map[string]string{"POSTGRES_PASSWORD": ""}},
		{name: "bad ssl mode", env: map[string]string{"POSTGRES_SSL_MODE": "maybe"}},
		{name: "bad cors origin", env: map[string]string{"ALLOWED_CORS_ORIGINS": "not a url"}},
		{name: "broker without port", env: map[string]string{"KAFKA_BROKERS": "localhost"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, New().Validate())
		})
	}
}
