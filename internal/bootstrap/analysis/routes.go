package analysis

import (
	"log"
	"net/http"

	"welfare-fraud-system/internal/api/rest"
	"welfare-fraud-system/internal/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes настраивает маршруты для analysis service
func SetupRoutes(router *gin.Engine, deps *Dependencies) {
	reportHandlers := rest.NewReportHandlers(deps.ReportService, deps.RedisClient)

	api := router.Group("/api/v1")
	{
		api.GET("/dashboard", reportHandlers.GetDashboard)
		api.GET("/claims", reportHandlers.GetClaims)
		api.GET("/fraud-alerts", reportHandlers.GetFraudAlerts)
		api.GET("/watchlist", reportHandlers.GetWatchlist)
		api.POST("/simulate-attack", reportHandlers.SimulateAttack)

		api.DELETE("/datasets", func(c *gin.Context) {
			clearAllData(c, deps)
		})
	}

	// Используем общие endpoints (health, events, stats)
	rest.SetupCommonEndpoints(router)
}

// clearAllData удаляет датасеты из SQLite, сбрасывает снимок и чистит Redis
func clearAllData(c *gin.Context, deps *Dependencies) {
	if err := deps.DatasetRepo.ClearAllDatasets(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear datasets"})
		return
	}

	deps.SnapshotCache.Clear()

	if err := deps.RedisClient.ClearAnalysisData(); err != nil {
		log.Printf("Warning: Failed to clear Redis data: %v", err)
	}

	logger.LogEvent(logger.EventDBUpdated, "analysis-service", "sqlite", map[string]interface{}{
		"action": "database_cleared",
	})

	c.JSON(http.StatusOK, gin.H{
		"message":       "All datasets and cache cleared successfully",
		"clear_storage": true,
	})
}
