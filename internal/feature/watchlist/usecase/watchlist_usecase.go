// Package usecase implements the watchlist business rules: tiered entry
// quotas, duplicate prevention and price resolution against the merged
// market catalog.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	marketentity "github.com/Komy007/CoinNexus/internal/feature/market/domain/entity"
	"github.com/Komy007/CoinNexus/internal/feature/watchlist/domain"
	"github.com/Komy007/CoinNexus/internal/feature/watchlist/domain/entity"
	"github.com/Komy007/CoinNexus/internal/platform/logger"
)

const (
	maxSymbolLength = 20
	maxNameLength   = 50
	maxNotesLength  = 500

	// priceUnavailableReason is shown to the user when no market could
	// supply a quote for an entry.
	priceUnavailableReason = "가격 정보를 가져올 수 없습니다."
)

// WatchlistRepository abstracts watchlist persistence.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type WatchlistRepository interface {
	// Create persists a new entry. A (userID, symbol) collision returns
	// domain.ErrDuplicateEntry.
	Create(ctx context.Context, entry *entity.WatchlistEntry) error
	// FindByID returns the entry only when it belongs to userID,
	// domain.ErrNotFound otherwise.
	FindByID(ctx context.Context, userID, entryID uint) (*entity.WatchlistEntry, error)
	// Update persists changes to an existing entry.
	Update(ctx context.Context, entry *entity.WatchlistEntry) error
	// Delete removes the user's entry, domain.ErrNotFound when absent.
	Delete(ctx context.Context, userID, entryID uint) error
	// ListByUser returns the user's entries, most recently added first.
	ListByUser(ctx context.Context, userID uint) ([]entity.WatchlistEntry, error)
	// CountByUser returns how many entries the user currently holds.
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

// TierRepository resolves a user's subscription tier.
type TierRepository interface {
	IsPremiumUser(ctx context.Context, userID uint) (bool, error)
}

// CatalogProvider supplies the merged spot+futures catalog used for
// symbol validation and price resolution.
type CatalogProvider interface {
	FetchMergedCatalog(ctx context.Context) (map[string]marketentity.CatalogTicker, error)
}

// AddCoinInput carries the fields of an add request.
type AddCoinInput struct {
	Symbol      string
	CoinName    string
	TargetPrice *float64
	Notes       *string
}

// UpdateCoinInput carries the mutable fields of an update request. Nil
// fields are left untouched.
type UpdateCoinInput struct {
	CoinName    *string
	TargetPrice *float64
	Notes       *string
}

// ResolvedItem is a watchlist entry joined with its live market quote.
// When no market carries the symbol the entry is still returned with
// PriceAvailable=false and a user-facing Reason.
type ResolvedItem struct {
	Entry          entity.WatchlistEntry
	PriceAvailable bool
	Reason         string

	CurrentPrice       float64
	PriceChange        float64
	PriceChangePercent float64
	Volume             float64
	HighPrice          float64
	LowPrice           float64
	OpenPrice          float64
	Source             marketentity.Market
	IsTargetReached    bool
}

// watchlistUsecase implements the watchlist operations.
type watchlistUsecase struct {
	repo    WatchlistRepository
	tiers   TierRepository
	catalog CatalogProvider
	quota   QuotaPolicy

	// userLocks serializes add operations per user so the count-check-
	// insert sequence cannot overshoot the quota under concurrent adds.
	userLocks sync.Map // map[uint]*sync.Mutex
}

// NewWatchlistUsecase creates a new watchlistUsecase instance.
func NewWatchlistUsecase(repo WatchlistRepository, tiers TierRepository, catalog CatalogProvider) *watchlistUsecase {
	return &watchlistUsecase{
		repo:    repo,
		tiers:   tiers,
		catalog: catalog,
		quota:   DefaultQuotaPolicy(),
	}
}

// lockFor returns the mutex serializing writes for one user.
func (u *watchlistUsecase) lockFor(userID uint) *sync.Mutex {
	mu, _ := u.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// normalizeSymbol trims and uppercases a symbol, rejecting blanks,
// oversized values and anything outside A-Z/0-9.
func normalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", fmt.Errorf("%w: symbol is required", domain.ErrInvalidInput)
	}
	if len(symbol) > maxSymbolLength {
		return "", fmt.Errorf("%w: symbol too long", domain.ErrInvalidInput)
	}
	for _, r := range symbol {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return "", fmt.Errorf("%w: symbol has invalid characters", domain.ErrInvalidInput)
		}
	}
	return symbol, nil
}

// normalizeCoinName trims the display name, rejecting blanks and
// oversized values. Every entry needs a name the UI can render.
func normalizeCoinName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: coin name is required", domain.ErrInvalidInput)
	}
	if len(name) > maxNameLength {
		return "", fmt.Errorf("%w: coin name too long", domain.ErrInvalidInput)
	}
	return name, nil
}

func validateOptionalFields(targetPrice *float64, notes *string) error {
	if targetPrice != nil && *targetPrice <= 0 {
		return fmt.Errorf("%w: target price must be positive", domain.ErrInvalidInput)
	}
	if notes != nil && len(*notes) > maxNotesLength {
		return fmt.Errorf("%w: notes too long", domain.ErrInvalidInput)
	}
	return nil
}

// AddCoin adds a symbol to the user's watchlist. The symbol must exist
// in the merged catalog when a catalog is obtainable; if every market is
// down the existence check is skipped so an exchange outage does not
// block adds. The count-quota-insert sequence runs under the user's
// lock.
func (u *watchlistUsecase) AddCoin(ctx context.Context, userID uint, input AddCoinInput) (*entity.WatchlistEntry, error) {
	symbol, err := normalizeSymbol(input.Symbol)
	if err != nil {
		return nil, err
	}
	coinName, err := normalizeCoinName(input.CoinName)
	if err != nil {
		return nil, err
	}
	if err := validateOptionalFields(input.TargetPrice, input.Notes); err != nil {
		return nil, err
	}

	catalog, err := u.catalog.FetchMergedCatalog(ctx)
	if err != nil {
		logger.Log.Warn("symbol validation skipped, no market reachable",
			zap.String("symbol", symbol), zap.Error(err))
	} else if _, ok := catalog[symbol]; !ok {
		return nil, fmt.Errorf("%w: unknown symbol %s", domain.ErrInvalidInput, symbol)
	}

	mu := u.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	count, err := u.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	isPremium, err := u.tiers.IsPremiumUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.quota.CanAdd(int(count), isPremium) {
		return nil, fmt.Errorf("%w: limit %d", domain.ErrQuotaExceeded, u.quota.MaxEntries(isPremium))
	}

	entry := &entity.WatchlistEntry{
		UserID:      userID,
		Symbol:      symbol,
		CoinName:    coinName,
		TargetPrice: input.TargetPrice,
		Notes:       input.Notes,
	}
	if err := u.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	logger.Log.Info("watchlist entry added",
		zap.Uint("user_id", userID), zap.String("symbol", symbol))
	return entry, nil
}

// UpdateCoin applies a partial update to the user's entry. The symbol
// itself is immutable; remove and re-add to track a different coin.
func (u *watchlistUsecase) UpdateCoin(ctx context.Context, userID, entryID uint, input UpdateCoinInput) (*entity.WatchlistEntry, error) {
	var coinName string
	if input.CoinName != nil {
		// A supplied name must be usable; clearing it is not allowed.
		normalized, err := normalizeCoinName(*input.CoinName)
		if err != nil {
			return nil, err
		}
		coinName = normalized
	}
	if err := validateOptionalFields(input.TargetPrice, input.Notes); err != nil {
		return nil, err
	}

	entry, err := u.repo.FindByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if input.CoinName != nil {
		entry.CoinName = coinName
	}
	if input.TargetPrice != nil {
		entry.TargetPrice = input.TargetPrice
	}
	if input.Notes != nil {
		entry.Notes = input.Notes
	}

	if err := u.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RemoveCoin deletes the user's entry.
func (u *watchlistUsecase) RemoveCoin(ctx context.Context, userID, entryID uint) error {
	return u.repo.Delete(ctx, userID, entryID)
}

// ListCoins returns the user's entries, most recently added first.
func (u *watchlistUsecase) ListCoins(ctx context.Context, userID uint) ([]entity.WatchlistEntry, error) {
	return u.repo.ListByUser(ctx, userID)
}

// ResolvePrices joins the user's watchlist with the merged catalog.
// Partial failure is tolerated twice over: a symbol missing from the
// catalog yields an unavailable item, and when no market is reachable
// every item is returned unavailable with a nil error. An empty
// watchlist skips the market fetch entirely.
func (u *watchlistUsecase) ResolvePrices(ctx context.Context, userID uint) ([]ResolvedItem, error) {
	entries, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []ResolvedItem{}, nil
	}

	catalog, err := u.catalog.FetchMergedCatalog(ctx)
	if err != nil {
		logger.Log.Warn("price resolution degraded, no market reachable",
			zap.Uint("user_id", userID), zap.Error(err))
		catalog = nil
	}

	items := make([]ResolvedItem, 0, len(entries))
	for _, entry := range entries {
		ticker, ok := catalog[entry.Symbol]
		if !ok {
			items = append(items, ResolvedItem{
				Entry:  entry,
				Reason: priceUnavailableReason,
			})
			continue
		}

		item := ResolvedItem{
			Entry:              entry,
			PriceAvailable:     true,
			CurrentPrice:       ticker.LastPrice,
			PriceChange:        ticker.PriceChange,
			PriceChangePercent: ticker.PriceChangePercent,
			Volume:             ticker.Volume,
			HighPrice:          ticker.HighPrice,
			LowPrice:           ticker.LowPrice,
			OpenPrice:          ticker.OpenPrice,
			Source:             ticker.Source,
		}
		if entry.TargetPrice != nil {
			item.IsTargetReached = ticker.LastPrice >= *entry.TargetPrice
		}
		items = append(items, item)
	}
	return items, nil
}
