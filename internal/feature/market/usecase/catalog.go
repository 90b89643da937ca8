// Package usecase implements the business logic for the market feature:
// fetching, merging and searching the spot and futures ticker catalogs.
package usecase

import (
	"strings"

	"github.com/Komy007/CoinNexus/internal/feature/market/domain/entity"
)

// QuoteAssets maps each market to its allow-list of quote-currency
// suffixes. The lists are fixed configuration: suffix stripping must not
// be inferred from data, or search results would silently change.
type QuoteAssets map[entity.Market][]string

// DefaultQuoteAssets returns the quote currencies each market trades
// against. The futures list is deliberately narrower.
func DefaultQuoteAssets() QuoteAssets {
	return QuoteAssets{
		entity.MarketSpot:    {"USDT", "BTC", "ETH", "BNB", "BUSD", "USDC"},
		entity.MarketFutures: {"USDT", "BTC", "ETH", "BNB"},
	}
}

// BaseToken strips the first matching quote suffix from a symbol and
// returns the base token. ok is false when the symbol carries none of
// the allowed suffixes. A symbol equal to a bare quote currency (e.g.
// "USDT") strips to the empty string; callers must treat that as
// malformed and exclude it.
func BaseToken(symbol string, quotes []string) (base string, ok bool) {
	for _, q := range quotes {
		if strings.HasSuffix(symbol, q) {
			return strings.TrimSuffix(symbol, q), true
		}
	}
	return "", false
}

// MergeCatalogs combines the two market snapshots into one logical
// catalog keyed by symbol. Spot entries are authoritative: a futures
// ticker is only taken for symbols the spot market does not quote, so
// the result holds at most one ticker per symbol.
func MergeCatalogs(spot, futures []entity.CatalogTicker) map[string]entity.CatalogTicker {
	merged := make(map[string]entity.CatalogTicker, len(spot)+len(futures))
	for _, t := range spot {
		t.Source = entity.MarketSpot
		merged[t.Symbol] = t
	}
	for _, t := range futures {
		if _, exists := merged[t.Symbol]; exists {
			continue
		}
		t.Source = entity.MarketFutures
		merged[t.Symbol] = t
	}
	return merged
}
