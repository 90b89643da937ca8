package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Komy007/CoinNexus/internal/feature/auth/domain/entity"
	"github.com/Komy007/CoinNexus/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestUser(username, email string) *entity.User {
	return &entity.User{
		Username: username,
		Email:    email,
		Password: "hashed_password",
	}
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		user := newTestUser("tester", "test@coinnexus.com")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err)
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.IsPremium, "IsPremium should default to false")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		require.NoError(t, repo.Create(context.Background(), newTestUser("first", "dup@coinnexus.com")))

		err := repo.Create(context.Background(), newTestUser("second", "dup@coinnexus.com"))
		assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)
	})

	t.Run("duplicate username error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		require.NoError(t, repo.Create(context.Background(), newTestUser("same", "a@coinnexus.com")))

		err := repo.Create(context.Background(), newTestUser("same", "b@coinnexus.com"))
		assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	created := newTestUser("finder", "find@coinnexus.com")
	require.NoError(t, repo.Create(context.Background(), created))

	t.Run("existing user", func(t *testing.T) {
		got, err := repo.FindByEmail(context.Background(), "find@coinnexus.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "finder", got.Username)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.FindByEmail(context.Background(), "nobody@coinnexus.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGorm_TouchLastLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := newTestUser("login", "login@coinnexus.com")
	require.NoError(t, repo.Create(context.Background(), user))
	require.Nil(t, user.LastLogin)

	now := time.Now().Truncate(time.Second)
	require.NoError(t, repo.TouchLastLogin(context.Background(), user.ID, now))

	got, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.WithinDuration(t, now, *got.LastLogin, time.Second)
}

func TestUserGorm_IsPremiumUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	standard := newTestUser("standard", "std@coinnexus.com")
	require.NoError(t, repo.Create(context.Background(), standard))

	premium := newTestUser("premium", "prm@coinnexus.com")
	premium.IsPremium = true
	require.NoError(t, repo.Create(context.Background(), premium))

	gotStd, err := repo.IsPremiumUser(context.Background(), standard.ID)
	require.NoError(t, err)
	assert.False(t, gotStd)

	gotPrm, err := repo.IsPremiumUser(context.Background(), premium.ID)
	require.NoError(t, err)
	assert.True(t, gotPrm)

	_, err = repo.IsPremiumUser(context.Background(), 9999)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}
