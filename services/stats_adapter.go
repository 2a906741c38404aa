package services

import (
	"context"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

// StatsAdapter exposes the stats pipeline to the scheduled jobs
type StatsAdapter struct {
	store *HotelStore
	rdb   *redis.Client
}

// NewStatsAdapter creates a StatsAdapter
func NewStatsAdapter(store *HotelStore, rdb *redis.Client) *StatsAdapter {
	return &StatsAdapter{store: store, rdb: rdb}
}

// RefreshStats recomputes the dashboard aggregates, rewrites the cache
// and pushes the result to connected clients
func (a *StatsAdapter) RefreshStats(m *melody.Melody) error {
	stats := ComputeDashboardStats(a.store.Snapshot(), Today())

	ctx := context.Background()
	if err := InvalidateStatsCache(ctx, a.rdb); err != nil {
		return err
	}
	if err := SaveStatsCache(ctx, a.rdb, stats); err != nil {
		return err
	}

	BroadcastStats(m, stats)
	return nil
}
