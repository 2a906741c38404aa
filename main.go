package main

import (
	"log"
	"net/http"

	"stayhub/config"
	"stayhub/jobs"
	"stayhub/routes"
	"stayhub/services"
	"stayhub/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	store := services.NewHotelStore(services.HotelStoreOptions{
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	services.SeedDemoData(store)

	products := services.NewProductService(services.SeedProducts())
	orders := services.NewOrderService()
	carts := services.NewCartService(config.RedisClient)
	facade := services.NewBookingFacade(store, config.RedisClient, m)

	jobs.SetStatsRefresher(services.NewStatsAdapter(store, config.RedisClient))
	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, facade, products, orders, carts, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := config.GetEnv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
