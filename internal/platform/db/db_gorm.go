// Package db opens the application's GORM database handle.
package db

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "github.com/Komy007/CoinNexus/internal/feature/auth/domain/entity"
	watchlistentity "github.com/Komy007/CoinNexus/internal/feature/watchlist/domain/entity"
	"github.com/Komy007/CoinNexus/internal/platform/logger"
)

// OpenDB connects to PostgreSQL using DB_* environment variables and
// retries for up to 60 seconds so the service survives a database that
// comes up after it. When RUN_MIGRATIONS=true the schema is migrated.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=Asia/Seoul",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError turns driver-specific unique violations into
		// gorm.ErrDuplicatedKey, which the adapters rely on.
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			logger.Log.Fatal("DB connect failed after 60s", zap.Error(err))
		}
		logger.Log.Warn("DB connect failed, retrying...", zap.Error(err))
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&watchlistentity.WatchlistEntry{},
		); err != nil {
			logger.Log.Fatal("failed to migrate", zap.Error(err))
		}
	}

	return db
}
