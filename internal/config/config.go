package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBConnString    string
	ShutdownTimeout time.Duration
	WhatsAppNumber  string
	DeliveryFee     decimal.Decimal
	AllowedOrigins  []string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// An empty DB_DSN means the API serves the built-in menu without a database.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:    os.Getenv("DB_DSN"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		WhatsAppNumber:  envOrDefault("WHATSAPP_NUMBER", "5511999999999"),
		DeliveryFee:     envDecimal("DELIVERY_FEE", decimal.New(500, -2)),
		AllowedOrigins:  envList("ALLOWED_ORIGINS", []string{"*"}),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envDecimal(key string, def decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		parsed, err := decimal.NewFromString(v)
		if err == nil && !parsed.IsNegative() {
			return parsed
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
