// Package entity defines the domain models for the market feature.
package entity

// Market identifies which upstream catalog a ticker came from.
type Market string

const (
	// MarketSpot is the spot exchange, the price-of-record when a symbol
	// is quoted on both markets.
	MarketSpot Market = "spot"

	// MarketFutures is the derivatives exchange, consulted for symbols
	// the spot market does not list (e.g. freshly listed contracts).
	MarketFutures Market = "futures"
)

// CatalogTicker is one symbol's 24h snapshot from a single fetch cycle.
// Tickers are ephemeral: fetched fresh per request, never persisted.
type CatalogTicker struct {
	Symbol             string
	LastPrice          float64
	PriceChange        float64
	PriceChangePercent float64
	Volume             float64
	HighPrice          float64
	LowPrice           float64
	OpenPrice          float64
	Source             Market
}
