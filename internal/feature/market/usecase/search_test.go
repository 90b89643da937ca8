package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Komy007/CoinNexus/internal/feature/market/domain/entity"
)

// testCatalog builds a merged catalog from a ticker list.
func testCatalog(tickers ...entity.CatalogTicker) map[string]entity.CatalogTicker {
	catalog := make(map[string]entity.CatalogTicker, len(tickers))
	for _, t := range tickers {
		catalog[t.Symbol] = t
	}
	return catalog
}

func spotTicker(symbol string, volume float64) entity.CatalogTicker {
	return entity.CatalogTicker{Symbol: symbol, LastPrice: 1, Volume: volume, Source: entity.MarketSpot}
}

func TestRankTickers_ExactMatchBeforeSubstring(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(
		spotTicker("BTCUSDT", 100),
		spotTicker("WBTCUSDT", 99999),  // substring match with huge volume
		spotTicker("BTCDOMUSDT", 500),  // substring match
		spotTicker("ETHUSDT", 100000),  // no match
		spotTicker("BTCBUSD", 50),      // exact base "BTC" against BUSD
	)

	got := RankTickers("btc", catalog, DefaultQuoteAssets(), 20)
	require.NotEmpty(t, got)

	// Exact base-token matches outrank substring matches regardless of volume.
	assert.Equal(t, "BTCUSDT", got[0].Symbol)
	assert.Equal(t, "BTCBUSD", got[1].Symbol)
	assert.Equal(t, "WBTCUSDT", got[2].Symbol)
	assert.Equal(t, "BTCDOMUSDT", got[3].Symbol)
	require.Len(t, got, 4, "ETHUSDT must not match")
}

func TestRankTickers_VolumeOrderWithinGroup(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(
		spotTicker("SOLOUSDT", 10),
		spotTicker("SOLAMAUSDT", 1000),
		spotTicker("SOLUSDT", 500),
	)

	got := RankTickers("sol", catalog, DefaultQuoteAssets(), 20)
	require.Len(t, got, 3)

	assert.Equal(t, "SOLUSDT", got[0].Symbol, "exact match first")
	assert.Equal(t, "SOLAMAUSDT", got[1].Symbol, "then by descending volume")
	assert.Equal(t, "SOLOUSDT", got[2].Symbol)
}

func TestRankTickers_RespectsMarketQuoteLists(t *testing.T) {
	t.Parallel()

	// BUSD is allowed on spot but not on futures.
	futuresBUSD := entity.CatalogTicker{Symbol: "ADABUSD", LastPrice: 1, Volume: 10, Source: entity.MarketFutures}
	spotBUSD := spotTicker("ADABUSD", 10)

	gotFutures := RankTickers("ada", testCatalog(futuresBUSD), DefaultQuoteAssets(), 20)
	assert.Empty(t, gotFutures, "futures ticker with non-futures quote asset is excluded")

	gotSpot := RankTickers("ada", testCatalog(spotBUSD), DefaultQuoteAssets(), 20)
	assert.Len(t, gotSpot, 1)
}

func TestRankTickers_EdgeCases(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(
		spotTicker("BTCUSDT", 100),
		spotTicker("USDT", 100),   // strips to empty base: excluded
		spotTicker("BTCEUR", 100), // unknown quote suffix: excluded
	)

	t.Run("blank query", func(t *testing.T) {
		assert.Empty(t, RankTickers("   ", catalog, DefaultQuoteAssets(), 20))
	})

	t.Run("malformed symbols excluded", func(t *testing.T) {
		got := RankTickers("btc", catalog, DefaultQuoteAssets(), 20)
		require.Len(t, got, 1)
		assert.Equal(t, "BTCUSDT", got[0].Symbol)
	})

	t.Run("case-insensitive query", func(t *testing.T) {
		got := RankTickers("BtC", catalog, DefaultQuoteAssets(), 20)
		require.Len(t, got, 1)
	})

	t.Run("limit truncates", func(t *testing.T) {
		big := testCatalog(
			spotTicker("AAAUSDT", 1),
			spotTicker("AABUSDT", 2),
			spotTicker("AACUSDT", 3),
		)
		got := RankTickers("aa", big, DefaultQuoteAssets(), 2)
		assert.Len(t, got, 2)
	})

	t.Run("non-positive limit uses default", func(t *testing.T) {
		got := RankTickers("btc", catalog, DefaultQuoteAssets(), 0)
		assert.Len(t, got, 1)
	})
}
