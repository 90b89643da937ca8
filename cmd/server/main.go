package main

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Komy007/CoinNexus/internal/app/router"
	authadapters "github.com/Komy007/CoinNexus/internal/feature/auth/adapters"
	authhandler "github.com/Komy007/CoinNexus/internal/feature/auth/transport/handler"
	authusecase "github.com/Komy007/CoinNexus/internal/feature/auth/usecase"
	"github.com/Komy007/CoinNexus/internal/feature/market/adapters/binance"
	markethandler "github.com/Komy007/CoinNexus/internal/feature/market/transport/handler"
	marketusecase "github.com/Komy007/CoinNexus/internal/feature/market/usecase"
	watchlistadapters "github.com/Komy007/CoinNexus/internal/feature/watchlist/adapters"
	watchlisthandler "github.com/Komy007/CoinNexus/internal/feature/watchlist/transport/handler"
	watchlistusecase "github.com/Komy007/CoinNexus/internal/feature/watchlist/usecase"
	"github.com/Komy007/CoinNexus/internal/platform/db"
	platformhttp "github.com/Komy007/CoinNexus/internal/platform/http"
	jwtmw "github.com/Komy007/CoinNexus/internal/platform/jwt"
	"github.com/Komy007/CoinNexus/internal/platform/logger"
	platformredis "github.com/Komy007/CoinNexus/internal/platform/redis"
	"github.com/Komy007/CoinNexus/internal/platform/session"
)

const tokenTTL = 24 * time.Hour

func main() {
	logger.Init()
	defer func() { _ = logger.Log.Sync() }()

	// DB
	gormDB := db.OpenDB()

	// Redis
	rdb, err := platformredis.NewRedisClient()
	if err != nil {
		logger.Log.Fatal("Redis is required for session storage", zap.Error(err))
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Log.Error("failed to close Redis client", zap.Error(err))
		}
	}()

	// JWT
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		logger.Log.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokenGen := jwtmw.NewGenerator(secret, tokenTTL)

	// Repository
	userRepo := authadapters.NewUserRepository(gormDB)
	sessionRepo := session.NewSessionRedis(rdb, "session")
	watchlistRepo := watchlistadapters.NewWatchlistRepository(gormDB)

	binanceCfg := binance.LoadConfig()
	catalogRepo := binance.NewBinanceCatalog(binanceCfg, platformhttp.NewHTTPClient(binanceCfg.Timeout))

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokenGen)
	marketUC := marketusecase.NewMarketUsecase(catalogRepo, marketusecase.DefaultQuoteAssets())
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchlistRepo, userRepo, marketUC)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	marketH := markethandler.NewMarketHandler(marketUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)

	r := router.NewRouter(authH, marketH, watchlistH)

	if err := r.Run(":8080"); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
