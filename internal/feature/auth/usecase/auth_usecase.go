package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Komy007/CoinNexus/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6

	// sessionTTL is how long a login session stays valid.
	sessionTTL = 7 * 24 * time.Hour
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrUserAlreadyExists when the
	// email or username is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user with the given email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// TouchLastLogin records a successful login timestamp.
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
}

// JWTGenerator abstracts JWT token creation.
type JWTGenerator interface {
	GenerateToken(userID uint, email string) (string, error)
}

// SessionRepository abstracts the session store (Redis).
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// DeleteByUserID removes every session record for the user.
	DeleteByUserID(ctx context.Context, userID uint) error
}

// ClientInfo carries request metadata recorded on the session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword checks that the password meets the minimum requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new user with a hashed password.
func (u *authUsecase) Signup(ctx context.Context, username, email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Username: username, Email: email, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login authenticates a user and returns a signed JWT on success.
// A bcrypt comparison runs even when the user does not exist, so response
// timing does not reveal whether an email is registered.
func (u *authUsecase) Login(ctx context.Context, email, password string, client ClientInfo) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path for
	// unknown users as well.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	now := time.Now()
	session := &entity.Session{
		ID:        newSessionID(),
		UserID:    user.ID,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	// A failed last-login update must not fail the login itself.
	_ = u.users.TouchLastLogin(ctx, user.ID, now)

	return token, nil
}

// Logout removes every session record for the user.
func (u *authUsecase) Logout(ctx context.Context, userID uint) error {
	return u.sessions.DeleteByUserID(ctx, userID)
}

// newSessionID returns a 64-character random hex string.
func newSessionID() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
