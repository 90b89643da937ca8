// Package adapters provides the repository implementations for the watchlist feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Komy007/CoinNexus/internal/feature/watchlist/domain"
	"github.com/Komy007/CoinNexus/internal/feature/watchlist/domain/entity"
	"github.com/Komy007/CoinNexus/internal/feature/watchlist/usecase"
)

// watchlistGorm is the GORM implementation of the WatchlistRepository interface.
type watchlistGorm struct {
	db *gorm.DB
}

// Compile-time check that watchlistGorm implements usecase.WatchlistRepository.
var _ usecase.WatchlistRepository = (*watchlistGorm)(nil)

// NewWatchlistRepository creates a new watchlistGorm backed by the given DB handle.
func NewWatchlistRepository(db *gorm.DB) *watchlistGorm {
	return &watchlistGorm{db: db}
}

// Create inserts an entry. A violation of the (user_id, symbol) unique
// index is reported as domain.ErrDuplicateEntry.
func (r *watchlistGorm) Create(ctx context.Context, entry *entity.WatchlistEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEntry
		}
		return err
	}
	return nil
}

// FindByID retrieves the user's entry. Another user's entry is
// indistinguishable from a missing one: both return domain.ErrNotFound.
func (r *watchlistGorm) FindByID(ctx context.Context, userID, entryID uint) (*entity.WatchlistEntry, error) {
	var entry entity.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Update saves all fields of an entry previously loaded via FindByID.
func (r *watchlistGorm) Update(ctx context.Context, entry *entity.WatchlistEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete removes the user's entry, domain.ErrNotFound when nothing matched.
func (r *watchlistGorm) Delete(ctx context.Context, userID, entryID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&entity.WatchlistEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser returns the user's entries, most recently added first.
// The id tie-break keeps the order stable for entries created within
// the same timestamp granularity.
func (r *watchlistGorm) ListByUser(ctx context.Context, userID uint) ([]entity.WatchlistEntry, error) {
	var entries []entity.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByUser returns how many entries the user currently holds.
func (r *watchlistGorm) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.WatchlistEntry{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
