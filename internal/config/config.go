// Package config centralizes environment configuration: the postgres
// DSN, the token signing secret, the wallet cache TTL and the tuning
// knobs the server and seed commands share.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingJWTSecret is returned when no signing secret is configured.
// Tokens are never issued or accepted without one.
var ErrMissingJWTSecret = errors.New("JWT_SECRET not configured")

// LoadEnv loads variables from a .env file when one exists. Deployed
// environments inject real variables instead, so a missing file is
// only logged.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns the named variable, or defaultVal when it is unset or
// blank.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns the named variable parsed as an int, or defaultVal
// when it is unset or unparseable.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns the named variable parsed as a duration
// ("30m", "1h"), or defaultVal when it is unset or unparseable.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// DatabaseDSN assembles the postgres connection string from the DB_*
// variables, defaulting to a local walletbook database.
func DatabaseDSN() string {
	return "host=" + GetEnv("DB_HOST", "localhost") +
		" user=" + GetEnv("DB_USER", "postgres") +
		" password=" + GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + GetEnv("DB_NAME", "walletbook") +
		" port=" + GetEnv("DB_PORT", "5432") +
		" sslmode=" + GetEnv("DB_SSLMODE", "disable")
}

// JWTSecret returns the token signing secret from JWT_SECRET, or
// ErrMissingJWTSecret when none is set.
func JWTSecret() (string, error) {
	secret := GetEnv("JWT_SECRET", "")
	if secret == "" {
		return "", ErrMissingJWTSecret
	}
	return secret, nil
}

// CacheTTL returns how long a cached wallet may live. A read that
// repopulates the cache just before a balance mutation invalidates it
// can pin a stale record, so the TTL stays short to bound that window.
func CacheTTL() time.Duration {
	return GetDurationEnv("CACHE_TTL", 5*time.Minute)
}
