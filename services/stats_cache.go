package services

import (
	"context"
	"encoding/json"
	"time"

	"stayhub/dto"

	"github.com/redis/go-redis/v9"
)

const (
	statsCacheKey = "stats:dashboard"
	statsCacheTTL = 10 * time.Minute
)

// GetCachedStats loads cached dashboard stats, or nil on a miss
func GetCachedStats(ctx context.Context, rdb *redis.Client) (*dto.DashboardStats, error) {
	val, err := rdb.Get(ctx, statsCacheKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats dto.DashboardStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SaveStatsCache stores the dashboard stats with a TTL
func SaveStatsCache(ctx context.Context, rdb *redis.Client, stats dto.DashboardStats) error {
	return SetToRedis(ctx, rdb, statsCacheKey, stats, statsCacheTTL)
}

// InvalidateStatsCache drops the cached stats after a mutation
func InvalidateStatsCache(ctx context.Context, rdb *redis.Client) error {
	return DeleteFromRedis(ctx, rdb, statsCacheKey)
}
