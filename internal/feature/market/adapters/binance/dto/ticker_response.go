// Package dto mirrors the wire shapes of Binance's ticker endpoints.
package dto

// Ticker24h is one element of the /ticker/24hr response array.
// Binance serializes every numeric field as a string.
type Ticker24h struct {
	Symbol             string `json:"symbol"`
	LastPrice          string `json:"lastPrice"`
	PriceChange        string `json:"priceChange"`
	PriceChangePercent string `json:"priceChangePercent"`
	Volume             string `json:"volume"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	OpenPrice          string `json:"openPrice"`
}
