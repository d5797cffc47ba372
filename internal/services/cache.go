package services

import (
	"encoding/json"
	"time"

	"github.com/Sibyl1122/promptGenerator/internal/database"
	"github.com/Sibyl1122/promptGenerator/pkg/logger"

	"go.uber.org/zap"
)

// cacheGet decodes key into dst. It reports false on a miss, on a decode
// failure and when redis is disabled.
func cacheGet(key string, dst interface{}) bool {
	if database.RedisClient == nil {
		return false
	}
	val, err := database.RedisClient.Get(database.Ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dst) == nil
}

func cacheSet(key string, value interface{}, ttl time.Duration) {
	if database.RedisClient == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := database.RedisClient.Set(database.Ctx, key, data, ttl).Err(); err != nil {
		logger.Log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheDel(keys ...string) {
	if database.RedisClient == nil {
		return
	}
	if err := database.RedisClient.Del(database.Ctx, keys...).Err(); err != nil {
		logger.Log.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
