package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"trendzo-analytics/analytics"
	"trendzo-analytics/api/handlers"
	"trendzo-analytics/api/middleware"
	"trendzo-analytics/config"
	"trendzo-analytics/db"
	_ "trendzo-analytics/docs"
	"trendzo-analytics/repositories"
	"trendzo-analytics/services"
)

func New() *gin.Engine {
	cfg := config.GetConfig()

	r := gin.Default()
	r.Use(middleware.RequestLoggingMiddleware())
	r.Use(corsMiddleware(cfg.Server.AllowedOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		// Try ping MongoDB
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		database := db.Database()
		linkRepo := repositories.NewLinkRepository(database)
		eventRepo := repositories.NewEventRepository(database)
		creatorRepo := repositories.NewCreatorRepository(database)
		metricsRepo := repositories.NewMetricsRepository(database)
		reportRepo := repositories.NewReportRepository(database)
		templateRepo := repositories.NewTemplateRepository(database)

		collector := analytics.NewCollector(linkRepo, eventRepo, creatorRepo, metricsRepo)
		aggregator := analytics.NewAggregator(metricsRepo, reportRepo, analytics.Thresholds{
			Conversion: cfg.Insights.ConversionDelta,
			ViewToEdit: cfg.Insights.ViewToEditDelta,
			EditToSave: cfg.Insights.EditToSaveDelta,
			Share:      cfg.Insights.ShareDelta,
			Engagement: cfg.Insights.EngagementDelta,
		})

		analyticsSvc := services.NewAnalyticsService(collector, aggregator, metricsRepo, reportRepo)
		api.POST("/links/:id/metrics", handlers.CalculateMetricsHandler(analyticsSvc))
		api.GET("/links/:id/metrics/history", handlers.MetricsHistoryHandler(analyticsSvc))
		api.GET("/links/:id/score", handlers.LinkScoreHandler(analyticsSvc))
		api.GET("/comparison/:period", handlers.ComparisonHandler(analyticsSvc))
		api.GET("/comparison/:period/latest", handlers.LatestComparisonHandler(analyticsSvc))

		linkSvc := services.NewLinkService(linkRepo)
		api.POST("/links", handlers.RegisterLinkHandler(linkSvc))

		templateSvc := services.NewTemplateService(templateRepo)
		api.POST("/templates/:id/source", handlers.TagSourceHandler(templateSvc))
	}

	return r
}

// corsMiddleware adapts rs/cors onto gin for the dashboard origins.
func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	crs := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return func(c *gin.Context) {
		crs.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions &&
			c.Request.Header.Get("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
