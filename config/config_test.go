package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DEFAULT_TEMPERATURE", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 0.7, cfg.DefaultTemperature)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DEFAULT_TEMPERATURE", "0.2")
	t.Setenv("DEFAULT_MAX_TOKENS", "2048")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 0.2, cfg.DefaultTemperature)
	assert.Equal(t, 2048, cfg.DefaultMaxTokens)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, "cache:6379", cfg.RedisFullAddr())
	assert.True(t, cfg.AuthEnabled())
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("LOG_MAX_SIZE", "lots")
	assert.Equal(t, 100, getEnvAsInt("LOG_MAX_SIZE", 100))
}
