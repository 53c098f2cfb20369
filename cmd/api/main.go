package main

import (
	"context"
	"log"
	"net/http"

	"trendzo-analytics/api/router"
	"trendzo-analytics/config"
	"trendzo-analytics/db"
	_ "trendzo-analytics/docs" // swag will generate this package
	"trendzo-analytics/logger"
)

// @title           Trendzo Analytics API
// @version         1.0
// @description     Content performance analytics for distribution links
// @BasePath        /api/v1
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")
	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}
	r := router.New()

	addr := config.GetConfig().Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
