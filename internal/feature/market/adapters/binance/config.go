// Package binance provides the catalog client for Binance's spot and
// futures 24h ticker endpoints.
package binance

import (
	"os"
	"time"
)

// Config holds configuration for the Binance catalog client.
type Config struct {
	SpotBaseURL    string        // Spot REST base (e.g. "https://api.binance.com/api/v3")
	FuturesBaseURL string        // Futures REST base (e.g. "https://fapi.binance.com/fapi/v1")
	Timeout        time.Duration // HTTP request timeout
}

// LoadConfig returns the production endpoints, overridable via
// BINANCE_SPOT_BASE_URL / BINANCE_FUTURES_BASE_URL.
func LoadConfig() Config {
	cfg := Config{
		SpotBaseURL:    "https://api.binance.com/api/v3",
		FuturesBaseURL: "https://fapi.binance.com/fapi/v1",
		Timeout:        10 * time.Second,
	}
	if v := os.Getenv("BINANCE_SPOT_BASE_URL"); v != "" {
		cfg.SpotBaseURL = v
	}
	if v := os.Getenv("BINANCE_FUTURES_BASE_URL"); v != "" {
		cfg.FuturesBaseURL = v
	}
	return cfg
}
