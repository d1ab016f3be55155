package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config carries everything the client and the dev mock server read from the
// environment. Missing variables fall back to local-development defaults.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration

	MockListenAddr string
	MockLatencyMin time.Duration
	MockLatencyMax time.Duration

	// RedisAddr, when set, switches the session store from in-memory to redis.
	RedisAddr string
}

func Load() Config {
	return Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8090/api"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 5*time.Second),
		MockListenAddr: getEnv("MOCK_LISTEN_ADDR", ":8090"),
		MockLatencyMin: getDuration("MOCK_LATENCY_MIN", 200*time.Millisecond),
		MockLatencyMax: getDuration("MOCK_LATENCY_MAX", 600*time.Millisecond),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
	}
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// MustInitLogger builds the process logger and installs it as the zap global.
// APP_ENV=production switches to the JSON production config.
func MustInitLogger() *zap.SugaredLogger {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}

	zap.ReplaceGlobals(logger)
	return logger.Sugar()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
