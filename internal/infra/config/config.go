package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"rentgear/internal/domain/pricing"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"

	QuoteLocal  = "local"
	QuoteRemote = "remote"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env      string
	HTTPAddr string

	Currency    string
	Commissions pricing.CommissionTable

	StorageMode      string
	MongoURI         string
	MongoDB          string
	ListingsFixtures string

	QuoteMode         string
	MarketplaceAPIURL string
	QuoteHTTPTimeout  time.Duration

	KafkaBrokers     []string
	KafkaTopicPrefix string
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:               getEnv("APP_ENV", "dev"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		Currency:          strings.ToUpper(getEnv("MARKETPLACE_CURRENCY", "USD")),
		StorageMode:       strings.ToLower(getEnv("STORAGE_MODE", StorageMemory)),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getEnv("MONGO_DB", "rentgear"),
		ListingsFixtures:  os.Getenv("LISTINGS_FIXTURES"),
		QuoteMode:         strings.ToLower(getEnv("QUOTE_MODE", QuoteLocal)),
		MarketplaceAPIURL: getEnv("MARKETPLACE_API_URL", "http://localhost:3500/api"),
		KafkaTopicPrefix:  getEnv("KAFKA_TOPIC_PREFIX", ""),
	}

	providerPct, err := parseFloatEnv("COMMISSION_PROVIDER_PCT", -25)
	if err != nil {
		return Config{}, err
	}
	customerFirstPct, err := parseFloatEnv("COMMISSION_CUSTOMER_FIRST_PCT", 15)
	if err != nil {
		return Config{}, err
	}
	customerPct, err := parseFloatEnv("COMMISSION_CUSTOMER_PCT", 55)
	if err != nil {
		return Config{}, err
	}
	cfg.Commissions = pricing.CommissionTable{
		ProviderPercent:          providerPct,
		CustomerFirstTimePercent: customerFirstPct,
		CustomerStandardPercent:  customerPct,
	}
	if err := cfg.Commissions.Validate(); err != nil {
		return Config{}, fmt.Errorf("commission configuration: %w", err)
	}

	timeout, err := parseDurationEnv("QUOTE_HTTP_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.QuoteHTTPTimeout = timeout

	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		for _, raw := range strings.Split(brokers, ",") {
			if b := strings.TrimSpace(raw); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	switch cfg.StorageMode {
	case StorageMemory:
	case StorageMongo:
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required when STORAGE_MODE=%s", StorageMongo)
		}
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_MODE: %q", cfg.StorageMode)
	}

	switch cfg.QuoteMode {
	case QuoteLocal:
	case QuoteRemote:
		if cfg.MarketplaceAPIURL == "" {
			return Config{}, fmt.Errorf("MARKETPLACE_API_URL is required when QUOTE_MODE=%s", QuoteRemote)
		}
	default:
		return Config{}, fmt.Errorf("invalid QUOTE_MODE: %q", cfg.QuoteMode)
	}

	if len(cfg.Currency) != 3 {
		return Config{}, fmt.Errorf("invalid MARKETPLACE_CURRENCY: %q", cfg.Currency)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseFloatEnv(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number: %w", key, err)
	}
	return f, nil
}
