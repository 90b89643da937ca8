// Package handler provides the HTTP handlers for the market feature.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Komy007/CoinNexus/internal/feature/market/domain/entity"
	"github.com/Komy007/CoinNexus/internal/feature/market/transport/http/dto"
	"github.com/Komy007/CoinNexus/internal/feature/market/usecase"
	"github.com/Komy007/CoinNexus/internal/platform/logger"
)

// MarketUsecase defines the market operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MarketUsecase interface {
	SearchCoins(ctx context.Context, query string, limit int) ([]entity.CatalogTicker, error)
	MajorPrices(ctx context.Context) ([]entity.CatalogTicker, error)
}

// MarketHandler handles HTTP requests for coin search and price snapshots.
type MarketHandler struct {
	market MarketUsecase
}

// NewMarketHandler creates a new MarketHandler instance.
func NewMarketHandler(market MarketUsecase) *MarketHandler {
	return &MarketHandler{market: market}
}

// Search ranks the cross-market catalog against the query parameter.
// A blank query and a full exchange outage both answer 200 with an
// empty result set; this endpoint never fails on upstream trouble.
func (h *MarketHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    []dto.SearchCoinItem{},
			"total":   0,
			"message": "검색어를 입력해주세요.",
		})
		return
	}

	limit := usecase.DefaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	tickers, err := h.market.SearchCoins(c.Request.Context(), query, limit)
	if err != nil {
		logger.Log.Error("coin search failed", zap.Error(err), zap.String("query", query))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "서버 오류가 발생했습니다."})
		return
	}

	items := make([]dto.SearchCoinItem, 0, len(tickers))
	for _, t := range tickers {
		items = append(items, dto.FromTicker(t))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"total":   len(items),
		"query":   query,
		"sources": gin.H{"spot": "binance", "futures": "binance-futures"},
	})
}

// Prices returns the fixed major-coin snapshot from the spot market.
// With spot unreachable there is nothing sensible to show, so the
// upstream failure maps to 502.
func (h *MarketHandler) Prices(c *gin.Context) {
	tickers, err := h.market.MajorPrices(c.Request.Context())
	if err != nil {
		logger.Log.Error("major price fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "시세 정보를 가져올 수 없습니다."})
		return
	}

	items := make([]dto.MajorPriceItem, 0, len(tickers))
	for _, t := range tickers {
		items = append(items, dto.FromMajorTicker(t))
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      items,
		"updatedAt": time.Now().UTC(),
	})
}
