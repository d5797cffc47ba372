package database

import (
	"context"

	"github.com/Sibyl1122/promptGenerator/config"

	"github.com/go-redis/redis/v8"
)

// RedisClient stays nil when no redis host is configured; callers treat a
// nil client as a disabled cache.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis(cfg *config.Config) error {
	if !cfg.RedisEnabled() {
		RedisClient = nil
		return nil
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	_, err := RedisClient.Ping(Ctx).Result()
	return err
}
