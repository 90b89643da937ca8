package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/Komy007/CoinNexus/internal/feature/market/adapters/binance/dto"
	"github.com/Komy007/CoinNexus/internal/feature/market/domain/entity"
	"github.com/Komy007/CoinNexus/internal/feature/market/usecase"
	"github.com/Komy007/CoinNexus/internal/platform/logger"
)

// BinanceCatalog implements the CatalogRepository interface against
// Binance's 24h ticker endpoints. The HTTP client is injected so tests
// can point it at a fake server.
type BinanceCatalog struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that BinanceCatalog implements usecase.CatalogRepository.
var _ usecase.CatalogRepository = (*BinanceCatalog)(nil)

// NewBinanceCatalog creates a new BinanceCatalog with the given
// configuration and HTTP client.
func NewBinanceCatalog(cfg Config, client *http.Client) *BinanceCatalog {
	return &BinanceCatalog{cfg: cfg, client: client}
}

// baseURL returns the REST base for a market.
func (b *BinanceCatalog) baseURL(market entity.Market) (string, error) {
	switch market {
	case entity.MarketSpot:
		return b.cfg.SpotBaseURL, nil
	case entity.MarketFutures:
		return b.cfg.FuturesBaseURL, nil
	default:
		return "", fmt.Errorf("binance: unknown market %q", market)
	}
}

// FetchTickers fetches the market's full 24h ticker snapshot.
// Transport failures, non-2xx statuses and undecodable payloads error
// the whole call; a malformed individual row is skipped so one bad
// ticker cannot poison the snapshot. No retries: the caller decides how
// to degrade when a market is unavailable.
func (b *BinanceCatalog) FetchTickers(ctx context.Context, market entity.Market) ([]entity.CatalogTicker, error) {
	base, err := b.baseURL(market)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/ticker/24hr", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "CoinNexus/1.0")
	req.Header.Set("Accept", "application/json")

	res, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("binance %s: %w", market, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logger.Log.Warn("failed to close response body", zap.Error(err))
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("binance %s: http %d", market, res.StatusCode)
	}

	var rows []dto.Ticker24h
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("binance %s: decode: %w", market, err)
	}

	tickers := make([]entity.CatalogTicker, 0, len(rows))
	for _, row := range rows {
		// Symbol and lastPrice are required; a row missing either is
		// dropped, not fatal.
		if row.Symbol == "" || row.LastPrice == "" {
			continue
		}
		last, err := strconv.ParseFloat(row.LastPrice, 64)
		if err != nil {
			logger.Log.Debug("skipping ticker with bad lastPrice",
				zap.String("symbol", row.Symbol), zap.String("lastPrice", row.LastPrice))
			continue
		}

		tickers = append(tickers, entity.CatalogTicker{
			Symbol:             row.Symbol,
			LastPrice:          last,
			PriceChange:        parseOptional(row.PriceChange),
			PriceChangePercent: parseOptional(row.PriceChangePercent),
			Volume:             parseOptional(row.Volume),
			HighPrice:          parseOptional(row.HighPrice),
			LowPrice:           parseOptional(row.LowPrice),
			OpenPrice:          parseOptional(row.OpenPrice),
			Source:             market,
		})
	}
	return tickers, nil
}

// parseOptional parses a numeric string, defaulting to 0 when the field
// is absent or malformed.
func parseOptional(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
