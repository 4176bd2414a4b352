package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort int
	HTTPPort int

	// HealthPort serves cartd's liveness routes, apart from the gateway.
	HealthPort int

	// CartdAddr is where the gateway dials the cart daemon.
	CartdAddr string

	StorefrontURL     string
	StorefrontToken   string
	StorefrontTimeout time.Duration
	LinesPageSize     int
}

// Load reads the environment. A .env file in the working directory, when
// present, fills in keys that are not already set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		GRPCPort: getEnvInt("GRPC_PORT", 8081),

		HealthPort: getEnvInt("HEALTH_PORT", 8082),

		CartdAddr: getEnv("CARTD_ADDR", "localhost:8081"),

		StorefrontURL:     getEnv("STOREFRONT_URL", ""),
		StorefrontToken:   getEnv("STOREFRONT_TOKEN", ""),
		StorefrontTimeout: getEnvDuration("STOREFRONT_TIMEOUT", 10*time.Second),
		LinesPageSize:     getEnvInt("CART_LINES_PAGE_SIZE", 250),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
