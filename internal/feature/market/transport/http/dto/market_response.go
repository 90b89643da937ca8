// Package dto defines the response shapes of the market API.
package dto

import "github.com/Komy007/CoinNexus/internal/feature/market/domain/entity"

// SearchCoinItem is one ranked search result.
type SearchCoinItem struct {
	Symbol             string  `json:"symbol"`
	Price              float64 `json:"price"`
	PriceChange        float64 `json:"priceChange"`
	PriceChangePercent float64 `json:"priceChangePercent"`
	Volume             float64 `json:"volume"`
	HighPrice          float64 `json:"highPrice"`
	LowPrice           float64 `json:"lowPrice"`
	Source             string  `json:"source"`
}

// FromTicker converts a catalog ticker into a search result item.
func FromTicker(t entity.CatalogTicker) SearchCoinItem {
	return SearchCoinItem{
		Symbol:             t.Symbol,
		Price:              t.LastPrice,
		PriceChange:        t.PriceChange,
		PriceChangePercent: t.PriceChangePercent,
		Volume:             t.Volume,
		HighPrice:          t.HighPrice,
		LowPrice:           t.LowPrice,
		Source:             string(t.Source),
	}
}

// MajorPriceItem is one entry of the major-coin snapshot. Unlike search
// results it carries the open so the client can render a daily candle.
type MajorPriceItem struct {
	Symbol             string  `json:"symbol"`
	Price              float64 `json:"price"`
	PriceChange        float64 `json:"priceChange"`
	PriceChangePercent float64 `json:"priceChangePercent"`
	Volume             float64 `json:"volume"`
	HighPrice          float64 `json:"highPrice"`
	LowPrice           float64 `json:"lowPrice"`
	OpenPrice          float64 `json:"openPrice"`
}

// FromMajorTicker converts a spot ticker into a snapshot item.
func FromMajorTicker(t entity.CatalogTicker) MajorPriceItem {
	return MajorPriceItem{
		Symbol:             t.Symbol,
		Price:              t.LastPrice,
		PriceChange:        t.PriceChange,
		PriceChangePercent: t.PriceChangePercent,
		Volume:             t.Volume,
		HighPrice:          t.HighPrice,
		LowPrice:           t.LowPrice,
		OpenPrice:          t.OpenPrice,
	}
}
