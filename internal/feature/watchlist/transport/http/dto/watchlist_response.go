package dto

import (
	"time"

	"github.com/Komy007/CoinNexus/internal/feature/watchlist/usecase"
)

// WatchlistPriceItem is one watchlist entry joined with its live quote,
// flattened for the client. Quote fields are omitted when no market
// carried the symbol; reason explains the gap instead.
type WatchlistPriceItem struct {
	ID          uint     `json:"id"`
	Symbol      string   `json:"symbol"`
	CoinName    string   `json:"coinName"`
	TargetPrice *float64 `json:"targetPrice,omitempty"`
	Notes       *string  `json:"notes,omitempty"`

	PriceAvailable bool   `json:"priceAvailable"`
	Reason         string `json:"reason,omitempty"`

	CurrentPrice       float64 `json:"currentPrice,omitempty"`
	PriceChange        float64 `json:"priceChange,omitempty"`
	PriceChangePercent float64 `json:"priceChangePercent,omitempty"`
	Volume             float64 `json:"volume,omitempty"`
	HighPrice          float64 `json:"highPrice,omitempty"`
	LowPrice           float64 `json:"lowPrice,omitempty"`
	OpenPrice          float64 `json:"openPrice,omitempty"`
	Source             string  `json:"source,omitempty"`
	IsTargetReached    bool    `json:"isTargetReached"`

	AddedAt time.Time `json:"addedAt"`
}

// FromResolvedItem flattens a resolved usecase item into its wire shape.
func FromResolvedItem(item usecase.ResolvedItem) WatchlistPriceItem {
	out := WatchlistPriceItem{
		ID:             item.Entry.ID,
		Symbol:         item.Entry.Symbol,
		CoinName:       item.Entry.CoinName,
		TargetPrice:    item.Entry.TargetPrice,
		Notes:          item.Entry.Notes,
		PriceAvailable: item.PriceAvailable,
		Reason:         item.Reason,
		AddedAt:        item.Entry.AddedAt,
	}
	if item.PriceAvailable {
		out.CurrentPrice = item.CurrentPrice
		out.PriceChange = item.PriceChange
		out.PriceChangePercent = item.PriceChangePercent
		out.Volume = item.Volume
		out.HighPrice = item.HighPrice
		out.LowPrice = item.LowPrice
		out.OpenPrice = item.OpenPrice
		out.Source = string(item.Source)
		out.IsTargetReached = item.IsTargetReached
	}
	return out
}
