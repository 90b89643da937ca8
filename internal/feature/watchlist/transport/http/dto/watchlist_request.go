// Package dto defines the request and response shapes of the watchlist API.
package dto

// AddWatchlistReq is the body of POST /api/watchlist.
type AddWatchlistReq struct {
	Symbol      string   `json:"symbol" binding:"required"`
	CoinName    string   `json:"coinName"`
	TargetPrice *float64 `json:"targetPrice"`
	Notes       *string  `json:"notes"`
}

// UpdateWatchlistReq is the body of PUT /api/watchlist/:id. Absent
// fields are left unchanged.
type UpdateWatchlistReq struct {
	CoinName    *string  `json:"coinName"`
	TargetPrice *float64 `json:"targetPrice"`
	Notes       *string  `json:"notes"`
}
