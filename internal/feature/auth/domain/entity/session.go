package entity

import "time"

// Session represents a logged-in user's session record.
// Sessions live in Redis with a TTL matching ExpiresAt and exist for
// logout handling and security auditing; the JWT itself stays stateless.
type Session struct {
	ID        string    // Random 64-character hex identifier
	UserID    uint      // Associated user ID
	UserAgent string    // Client's User-Agent header
	IPAddress string    // Client's IP address
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
