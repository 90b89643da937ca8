package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Komy007/CoinNexus/internal/feature/market/domain/entity"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockMarketUsecase is a func-field mock of the MarketUsecase interface.
type mockMarketUsecase struct {
	SearchCoinsFunc func(ctx context.Context, query string, limit int) ([]entity.CatalogTicker, error)
	MajorPricesFunc func(ctx context.Context) ([]entity.CatalogTicker, error)
}

func (m *mockMarketUsecase) SearchCoins(ctx context.Context, query string, limit int) ([]entity.CatalogTicker, error) {
	if m.SearchCoinsFunc != nil {
		return m.SearchCoinsFunc(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockMarketUsecase) MajorPrices(ctx context.Context) ([]entity.CatalogTicker, error) {
	if m.MajorPricesFunc != nil {
		return m.MajorPricesFunc(ctx)
	}
	return nil, nil
}

func performGET(t *testing.T, h gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	h(c)
	return w
}

func TestMarketHandler_Search(t *testing.T) {
	t.Run("blank query answers 200 without searching", func(t *testing.T) {
		called := false
		h := NewMarketHandler(&mockMarketUsecase{
			SearchCoinsFunc: func(ctx context.Context, query string, limit int) ([]entity.CatalogTicker, error) {
				called = true
				return nil, nil
			},
		})

		w := performGET(t, h.Search, "/watchlist/search")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
		assert.Contains(t, w.Body.String(), "검색어를 입력해주세요.")
		assert.False(t, called)
	})

	t.Run("results are flattened with their source market", func(t *testing.T) {
		h := NewMarketHandler(&mockMarketUsecase{
			SearchCoinsFunc: func(ctx context.Context, query string, limit int) ([]entity.CatalogTicker, error) {
				assert.Equal(t, "btc", query)
				return []entity.CatalogTicker{
					{Symbol: "BTCUSDT", LastPrice: 50000, Volume: 10, Source: entity.MarketSpot},
					{Symbol: "1000PEPEUSDT", LastPrice: 0.01, Source: entity.MarketFutures},
				}, nil
			},
		})

		w := performGET(t, h.Search, "/watchlist/search?query=btc")

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"symbol":"BTCUSDT"`)
		assert.Contains(t, body, `"source":"spot"`)
		assert.Contains(t, body, `"source":"futures"`)
		assert.Contains(t, body, `"total":2`)
		assert.Contains(t, body, `"query":"btc"`)
	})

	t.Run("limit parameter reaches the usecase", func(t *testing.T) {
		var gotLimit int
		h := NewMarketHandler(&mockMarketUsecase{
			SearchCoinsFunc: func(ctx context.Context, query string, limit int) ([]entity.CatalogTicker, error) {
				gotLimit = limit
				return nil, nil
			},
		})

		performGET(t, h.Search, "/watchlist/search?query=btc&limit=5")
		assert.Equal(t, 5, gotLimit)
	})

	t.Run("empty result is still a success", func(t *testing.T) {
		h := NewMarketHandler(&mockMarketUsecase{
			SearchCoinsFunc: func(ctx context.Context, query string, limit int) ([]entity.CatalogTicker, error) {
				return []entity.CatalogTicker{}, nil
			},
		})

		w := performGET(t, h.Search, "/watchlist/search?query=zzz")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":0`)
	})
}

func TestMarketHandler_Prices(t *testing.T) {
	t.Run("snapshot includes the open price", func(t *testing.T) {
		h := NewMarketHandler(&mockMarketUsecase{
			MajorPricesFunc: func(ctx context.Context) ([]entity.CatalogTicker, error) {
				return []entity.CatalogTicker{
					{Symbol: "BTCUSDT", LastPrice: 50000, OpenPrice: 49000, Source: entity.MarketSpot},
				}, nil
			},
		})

		w := performGET(t, h.Prices, "/market/prices")

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"openPrice":49000`)
		assert.Contains(t, body, `"updatedAt"`)
	})

	t.Run("spot outage maps to 502", func(t *testing.T) {
		h := NewMarketHandler(&mockMarketUsecase{
			MajorPricesFunc: func(ctx context.Context) ([]entity.CatalogTicker, error) {
				return nil, errors.New("binance spot: http 503")
			},
		})

		w := performGET(t, h.Prices, "/market/prices")
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
