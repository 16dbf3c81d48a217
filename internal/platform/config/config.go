package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Rate provider settings
	ExchangeRateAPIKey string
	ExchangeRateAPIURL string
	FetchTimeout       time.Duration
	RateCacheTTL       time.Duration
	RateCachePath      string

	// Formatted rate for the refresh endpoint, e.g. "10-M" (ulule/limiter).
	RefreshRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("EXCHANGE_RATE_API_KEY", "")
	viper.SetDefault("EXCHANGE_RATE_API_URL", "https://api.exchangerate.host")
	viper.SetDefault("EXCHANGE_RATE_FETCH_TIMEOUT", "10s")
	viper.SetDefault("RATE_CACHE_TTL", "1h")
	viper.SetDefault("RATE_CACHE_PATH", "./data/warikan.db")
	viper.SetDefault("REFRESH_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.ExchangeRateAPIKey = viper.GetString("EXCHANGE_RATE_API_KEY")
	if cfg.ExchangeRateAPIKey == "" {
		// Not fatal: the rate provider degrades to the fallback table.
		log.Println("Warning: EXCHANGE_RATE_API_KEY environment variable not set. Live rates disabled, fallback table will be used.")
	}
	cfg.ExchangeRateAPIURL = viper.GetString("EXCHANGE_RATE_API_URL")

	fetchTimeoutStr := viper.GetString("EXCHANGE_RATE_FETCH_TIMEOUT")
	fetchTimeout, err := time.ParseDuration(fetchTimeoutStr)
	if err != nil {
		fetchTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for EXCHANGE_RATE_FETCH_TIMEOUT ('%s'). Defaulting to %s\n", fetchTimeoutStr, fetchTimeout)
	}
	cfg.FetchTimeout = fetchTimeout

	ttlStr := viper.GetString("RATE_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = time.Hour
		log.Printf("Warning: Invalid value for RATE_CACHE_TTL ('%s'). Defaulting to %s\n", ttlStr, ttl)
	}
	cfg.RateCacheTTL = ttl

	cfg.RateCachePath = viper.GetString("RATE_CACHE_PATH")
	cfg.RefreshRateLimit = viper.GetString("REFRESH_RATE_LIMIT")

	return cfg, nil
}
