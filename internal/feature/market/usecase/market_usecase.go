package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Komy007/CoinNexus/internal/feature/market/domain/entity"
	"github.com/Komy007/CoinNexus/internal/platform/logger"
)

// ErrAllMarketsUnavailable is returned when neither the spot nor the
// futures catalog could be fetched.
var ErrAllMarketsUnavailable = errors.New("all markets unavailable")

// CatalogRepository abstracts fetching one market's full ticker snapshot.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CatalogRepository interface {
	// FetchTickers returns the market's current 24h ticker list.
	// Implementations must bound the request with a timeout and honor
	// context cancellation.
	FetchTickers(ctx context.Context, market entity.Market) ([]entity.CatalogTicker, error)
}

// defaultMajorSymbols is the fixed set shown on the market overview.
var defaultMajorSymbols = []string{
	"BTCUSDT", "ETHUSDT", "BNBUSDT", "ADAUSDT",
	"SOLUSDT", "XRPUSDT", "DOTUSDT", "DOGEUSDT",
}

// marketUsecase implements catalog search and market snapshot operations.
type marketUsecase struct {
	catalog CatalogRepository
	quotes  QuoteAssets
	majors  []string
}

// NewMarketUsecase creates a new marketUsecase instance.
func NewMarketUsecase(catalog CatalogRepository, quotes QuoteAssets) *marketUsecase {
	return &marketUsecase{
		catalog: catalog,
		quotes:  quotes,
		majors:  defaultMajorSymbols,
	}
}

// FetchMergedCatalog fetches the spot and futures snapshots concurrently
// and merges them, spot winning ties. A failed market degrades to an
// empty snapshot; only when both markets fail does the call error with
// ErrAllMarketsUnavailable. Total latency is bounded by the slower of
// the two fetches, not their sum.
func (m *marketUsecase) FetchMergedCatalog(ctx context.Context) (map[string]entity.CatalogTicker, error) {
	var (
		wg                sync.WaitGroup
		spotList, futList []entity.CatalogTicker
		spotErr, futErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		spotList, spotErr = m.catalog.FetchTickers(ctx, entity.MarketSpot)
	}()
	go func() {
		defer wg.Done()
		futList, futErr = m.catalog.FetchTickers(ctx, entity.MarketFutures)
	}()
	wg.Wait()

	if spotErr != nil {
		logger.Log.Warn("spot catalog unavailable", zap.Error(spotErr))
		spotList = nil
	}
	if futErr != nil {
		logger.Log.Warn("futures catalog unavailable", zap.Error(futErr))
		futList = nil
	}
	if spotErr != nil && futErr != nil {
		return nil, ErrAllMarketsUnavailable
	}

	return MergeCatalogs(spotList, futList), nil
}

// SearchCoins ranks the merged catalog against a free-text query.
// Upstream failures are recovered locally: with no market reachable the
// search yields an empty, successful result rather than an error.
func (m *marketUsecase) SearchCoins(ctx context.Context, query string, limit int) ([]entity.CatalogTicker, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.CatalogTicker{}, nil
	}

	catalog, err := m.FetchMergedCatalog(ctx)
	if err != nil {
		return []entity.CatalogTicker{}, nil
	}

	return RankTickers(query, catalog, m.quotes, limit), nil
}

// MajorPrices returns the spot snapshot filtered to the fixed major-coin
// set, in the configured order. Unlike search and price resolution this
// has no second market to fall back to, so a spot failure is surfaced.
func (m *marketUsecase) MajorPrices(ctx context.Context) ([]entity.CatalogTicker, error) {
	tickers, err := m.catalog.FetchTickers(ctx, entity.MarketSpot)
	if err != nil {
		return nil, err
	}

	bySymbol := make(map[string]entity.CatalogTicker, len(tickers))
	for _, t := range tickers {
		t.Source = entity.MarketSpot
		bySymbol[t.Symbol] = t
	}

	majors := make([]entity.CatalogTicker, 0, len(m.majors))
	for _, symbol := range m.majors {
		if t, ok := bySymbol[symbol]; ok {
			majors = append(majors, t)
		}
	}
	return majors, nil
}
