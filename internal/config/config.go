package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration. The member and category
// vocabularies are closed: fixed at startup, never grown at runtime.
type Config struct {
	Port            string
	Members         []string
	Categories      []string
	HomeCurrency    string
	ForeignCurrency string

	// DefaultExchangeRate is home units per one foreign unit, used until
	// the first settings update.
	DefaultExchangeRate float64
}

// Configuration errors
var (
	ErrNoMembers   = errors.New("MEMBERS must list at least one trip member")
	ErrInvalidRate = errors.New("EXCHANGE_RATE must be a positive number")
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Members:         splitCSV(getEnv("MEMBERS", "Seokho,Namseop,Seunghwan,Dohyung")),
		Categories:      splitCSV(getEnv("CATEGORIES", "food,lodging,transport,sightseeing,shopping,other")),
		HomeCurrency:    getEnv("HOME_CURRENCY", "KRW"),
		ForeignCurrency: getEnv("FOREIGN_CURRENCY", "JPY"),
	}

	if len(cfg.Members) == 0 {
		return nil, ErrNoMembers
	}

	rate, err := strconv.ParseFloat(getEnv("EXCHANGE_RATE", "100"), 64)
	if err != nil || rate <= 0 {
		return nil, ErrInvalidRate
	}
	cfg.DefaultExchangeRate = rate

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
