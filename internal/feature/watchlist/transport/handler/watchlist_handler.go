// Package handler provides the HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Komy007/CoinNexus/internal/feature/watchlist/domain"
	"github.com/Komy007/CoinNexus/internal/feature/watchlist/domain/entity"
	"github.com/Komy007/CoinNexus/internal/feature/watchlist/transport/http/dto"
	"github.com/Komy007/CoinNexus/internal/feature/watchlist/usecase"
	jwtmw "github.com/Komy007/CoinNexus/internal/platform/jwt"
	"github.com/Komy007/CoinNexus/internal/platform/logger"
)

// WatchlistUsecase defines the watchlist operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type WatchlistUsecase interface {
	AddCoin(ctx context.Context, userID uint, input usecase.AddCoinInput) (*entity.WatchlistEntry, error)
	UpdateCoin(ctx context.Context, userID, entryID uint, input usecase.UpdateCoinInput) (*entity.WatchlistEntry, error)
	RemoveCoin(ctx context.Context, userID, entryID uint) error
	ListCoins(ctx context.Context, userID uint) ([]entity.WatchlistEntry, error)
	ResolvePrices(ctx context.Context, userID uint) ([]usecase.ResolvedItem, error)
}

// WatchlistHandler handles HTTP requests for watchlist operations.
type WatchlistHandler struct {
	watchlist WatchlistUsecase
}

// NewWatchlistHandler creates a new WatchlistHandler instance.
func NewWatchlistHandler(watchlist WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist}
}

// respondError maps a usecase error to its HTTP status and user-facing
// Korean message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "입력값이 올바르지 않습니다."})
	case errors.Is(err, domain.ErrDuplicateEntry):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "이미 관심 목록에 추가된 코인입니다."})
	case errors.Is(err, domain.ErrQuotaExceeded):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "관심 목록 한도를 초과했습니다."})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "관심 코인을 찾을 수 없습니다."})
	default:
		logger.Log.Error("watchlist operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "서버 오류가 발생했습니다."})
	}
}

// entryID parses the :id path parameter.
func entryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return 0, false
	}
	return uint(id), true
}

// List returns the authenticated user's watchlist, newest first.
func (h *WatchlistHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	entries, err := h.watchlist.ListCoins(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if entries == nil {
		entries = []entity.WatchlistEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "watchlists": entries, "total": len(entries)})
}

// Add puts a new coin on the user's watchlist.
func (h *WatchlistHandler) Add(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.AddWatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "입력값이 올바르지 않습니다."})
		return
	}

	entry, err := h.watchlist.AddCoin(c.Request.Context(), userID, usecase.AddCoinInput{
		Symbol:      req.Symbol,
		CoinName:    req.CoinName,
		TargetPrice: req.TargetPrice,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "관심 목록에 추가되었습니다.",
		"watchlist": entry,
	})
}

// Update modifies the name, target price or notes of an entry.
func (h *WatchlistHandler) Update(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req dto.UpdateWatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "입력값이 올바르지 않습니다."})
		return
	}

	entry, err := h.watchlist.UpdateCoin(c.Request.Context(), userID, id, usecase.UpdateCoinInput{
		CoinName:    req.CoinName,
		TargetPrice: req.TargetPrice,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "관심 코인이 수정되었습니다.",
		"watchlist": entry,
	})
}

// Remove deletes an entry from the user's watchlist.
func (h *WatchlistHandler) Remove(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.watchlist.RemoveCoin(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "관심 목록에서 삭제되었습니다."})
}

// Prices returns the user's watchlist with live quotes attached. A full
// market outage still answers 200: every item simply comes back with
// priceAvailable=false.
func (h *WatchlistHandler) Prices(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	items, err := h.watchlist.ResolvePrices(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.WatchlistPriceItem, 0, len(items))
	for _, item := range items {
		out = append(out, dto.FromResolvedItem(item))
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"watchlists": out,
		"total":      len(out),
		"updatedAt":  time.Now().UTC(),
	})
}
