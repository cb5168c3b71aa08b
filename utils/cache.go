// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"civicjustice/config"

	"github.com/go-redis/redis/v8"
)

var (
	// DraftCacheClient holds report drafts when DRAFT_STORE=redis.
	DraftCacheClient *redis.Client
)

// InitDraftCache initializes the Redis client used for report drafts.
func InitDraftCache() error {
	DraftCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDraftDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := DraftCacheClient.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis (drafts): %w", err)
	}
	return nil
}

// GetDraftCacheClient returns the Redis client for report drafts.
func GetDraftCacheClient() (*redis.Client, error) {
	if DraftCacheClient == nil {
		if err := InitDraftCache(); err != nil {
			return nil, err
		}
	}
	return DraftCacheClient, nil
}
