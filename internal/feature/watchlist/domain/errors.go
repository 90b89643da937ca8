// Package domain holds the watchlist feature's shared error taxonomy.
package domain

import "errors"

var (
	// ErrInvalidInput marks a request the caller can fix: a blank or
	// malformed symbol, a non-positive target price, oversized notes.
	ErrInvalidInput = errors.New("invalid watchlist input")

	// ErrDuplicateEntry marks an add for a symbol the user already tracks.
	ErrDuplicateEntry = errors.New("watchlist entry already exists")

	// ErrQuotaExceeded marks an add that would push the user past the
	// entry limit of their tier.
	ErrQuotaExceeded = errors.New("watchlist quota exceeded")

	// ErrNotFound marks an operation on an entry that does not exist or
	// does not belong to the requesting user.
	ErrNotFound = errors.New("watchlist entry not found")
)
