// Package entity defines the watchlist feature's persistent model.
package entity

import "time"

// WatchlistEntry is one coin a user tracks. A user can track a symbol
// at most once; the composite unique index enforces that at the
// database level as a backstop behind the usecase check.
type WatchlistEntry struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	UserID      uint     `gorm:"not null;uniqueIndex:idx_user_symbol" json:"userId"`
	Symbol      string   `gorm:"size:20;not null;uniqueIndex:idx_user_symbol" json:"symbol"`
	CoinName    string   `gorm:"size:50" json:"coinName"`
	TargetPrice *float64 `json:"targetPrice,omitempty"`
	Notes       *string  `gorm:"type:text" json:"notes,omitempty"`

	AddedAt   time.Time `gorm:"autoCreateTime" json:"addedAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName overrides the default GORM table name.
func (WatchlistEntry) TableName() string {
	return "user_watchlists"
}
