package usecase

import (
	"sort"
	"strings"

	"github.com/Komy007/CoinNexus/internal/feature/market/domain/entity"
)

// DefaultSearchLimit caps search results when the caller supplies no limit.
const DefaultSearchLimit = 20

// RankTickers filters the merged catalog by a free-text query and orders
// the hits deterministically.
//
// A ticker qualifies when its symbol carries one of its market's allowed
// quote suffixes and its base token equals or contains the query
// (case-insensitive). Exact base-token matches sort before substring
// matches; within each group higher 24h volume ranks first, so "btc"
// puts BTCUSDT ahead of every symbol that merely contains "btc".
// Symbol order breaks remaining ties.
func RankTickers(query string, catalog map[string]entity.CatalogTicker, quotes QuoteAssets, limit int) []entity.CatalogTicker {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	type candidate struct {
		ticker entity.CatalogTicker
		exact  bool
	}

	candidates := make([]candidate, 0)
	for _, t := range catalog {
		base, ok := BaseToken(t.Symbol, quotes[t.Source])
		if !ok || base == "" {
			// No allowed quote pairing, or the symbol is a bare quote
			// currency; either way it has no searchable base token.
			continue
		}
		base = strings.ToLower(base)
		if base != query && !strings.Contains(base, query) {
			continue
		}
		candidates = append(candidates, candidate{ticker: t, exact: base == query})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].exact != candidates[j].exact {
			return candidates[i].exact
		}
		if candidates[i].ticker.Volume != candidates[j].ticker.Volume {
			return candidates[i].ticker.Volume > candidates[j].ticker.Volume
		}
		return candidates[i].ticker.Symbol < candidates[j].ticker.Symbol
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]entity.CatalogTicker, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.ticker)
	}
	return result
}
