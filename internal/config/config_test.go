package config

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DATABASE_URL", "REDIS_URL", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "REQUEST_TIMEOUT", "AUTO_MIGRATE"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.AutoMigrate)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "mangas.events", cfg.EventsChannel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("REQUEST_TIMEOUT", "750ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, ":9090", cfg.HTTPAddr())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"HTTP_PORT":       "eighty",
		"AUTO_MIGRATE":    "maybe",
		"REQUEST_TIMEOUT": "soon",
		"RATE_LIMIT_RPS":  "fast",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		HTTPPort:       70000,
		RequestTimeout: time.Second,
		RateLimitRPS:   1,
		RateLimitBurst: 1,
		LogLevel:       "loud",
		LogFormat:      "json",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "info", LogFormat: "json"}
	cfg.NewLogger(&buf).Info("server_starting", "addr", ":8080")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))

	buf.Reset()
	cfg.LogFormat = "text"
	cfg.NewLogger(&buf).Debug("hidden")
	assert.Empty(t, buf.String())
}
