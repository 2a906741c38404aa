package controllers

import (
	"context"
	"log"

	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// StatsController serves the dashboard aggregates
type StatsController struct {
	store *services.HotelStore
	rdb   *redis.Client
}

// NewStatsController creates a StatsController
func NewStatsController(store *services.HotelStore, rdb *redis.Client) *StatsController {
	return &StatsController{store: store, rdb: rdb}
}

func (ctl *StatsController) GetDashboardStats(c *gin.Context) {
	ctx := context.Background()

	if cached, err := services.GetCachedStats(ctx, ctl.rdb); err == nil && cached != nil {
		response.Success(c, cached)
		return
	}

	stats := services.ComputeDashboardStats(ctl.store.Snapshot(), services.Today())
	if err := services.SaveStatsCache(ctx, ctl.rdb, stats); err != nil {
		log.Printf("Failed to cache dashboard stats: %v", err)
	}

	response.Success(c, stats)
}
