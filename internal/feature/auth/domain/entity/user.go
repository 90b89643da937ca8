// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered CoinNexus member.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the public display name. It must be unique.
	Username string `gorm:"uniqueIndex;size:30;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:100;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	Password string `gorm:"size:255;not null"`

	// IsPremium marks premium membership. Premium members may keep a
	// larger watchlist (standard: 5 coins, premium: 20 coins).
	IsPremium bool `gorm:"not null;default:false"`

	// LastLogin records the most recent successful login, nil before the first.
	LastLogin *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
