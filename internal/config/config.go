package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendURL     string
	RedisAddr      string
	HTTPPort       string
	JWTSecret      string
	PaymentKeyID   string
	RequestTimeout time.Duration
	SessionTTL     time.Duration
}

func NewConfig() *Config {
	// A missing .env is fine, real env vars still apply.
	_ = godotenv.Load()

	return &Config{
		BackendURL:     getEnv("BACKEND_URL", "http://localhost:5000/api"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
		PaymentKeyID:   getEnv("PAYMENT_KEY_ID", "rzp_test_S6edd6ao475dhW"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		SessionTTL:     getDuration("SESSION_TTL", 30*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
