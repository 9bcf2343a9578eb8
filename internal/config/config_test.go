package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("set value wins", func(t *testing.T) {
		t.Setenv("WB_TEST_KEY", "value")
		assert.Equal(t, "value", GetEnv("WB_TEST_KEY", "fallback"))
	})

	t.Run("blank value falls back", func(t *testing.T) {
		t.Setenv("WB_TEST_KEY", "")
		assert.Equal(t, "fallback", GetEnv("WB_TEST_KEY", "fallback"))
	})
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("WB_TEST_INT", "42")
	assert.Equal(t, 42, GetIntEnv("WB_TEST_INT", 7))

	t.Setenv("WB_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetIntEnv("WB_TEST_INT", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("WB_TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetDurationEnv("WB_TEST_DUR", time.Minute))

	t.Setenv("WB_TEST_DUR", "soon")
	assert.Equal(t, time.Minute, GetDurationEnv("WB_TEST_DUR", time.Minute))
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "wb")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "wbprod")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "require")

	assert.Equal(t,
		"host=db.internal user=wb password=secret dbname=wbprod port=5433 sslmode=require",
		DatabaseDSN())
}

func TestJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "hush")
	secret, err := JWTSecret()
	assert.NoError(t, err)
	assert.Equal(t, "hush", secret)

	t.Setenv("JWT_SECRET", "")
	_, err = JWTSecret()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestCacheTTL(t *testing.T) {
	t.Setenv("CACHE_TTL", "")
	assert.Equal(t, 5*time.Minute, CacheTTL())

	t.Setenv("CACHE_TTL", "30s")
	assert.Equal(t, 30*time.Second, CacheTTL())
}
