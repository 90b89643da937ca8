// Package redis constructs the shared Redis client.
package redis

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Komy007/CoinNexus/internal/platform/logger"
)

// NewRedisClient connects to Redis using REDIS_HOST/REDIS_PORT/REDIS_PASSWORD
// and verifies the connection with a ping.
func NewRedisClient() (*redis.Client, error) {
	addr := os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT")
	password := os.Getenv("REDIS_PASSWORD")

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Log.Error("Redis connection failed", zap.String("address", addr), zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Redis connection successful", zap.String("address", addr))
	return rdb, nil
}
