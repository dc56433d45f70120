package rest

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"welfare-fraud-system/internal/generator"
	"welfare-fraud-system/internal/logger"
	"welfare-fraud-system/internal/redis"
	"welfare-fraud-system/internal/services"
	"welfare-fraud-system/internal/snapshot"

	"github.com/gin-gonic/gin"
)

// ReportHandlers обслуживает отчетные запросы поверх текущего снимка анализа
type ReportHandlers struct {
	reportService services.ReportService
	redisClient   redis.ClientInterface
	generator     *generator.ClaimGenerator
}

// NewReportHandlers создает обработчики отчетного API
func NewReportHandlers(reportService services.ReportService, redisClient redis.ClientInterface) *ReportHandlers {
	return &ReportHandlers{
		reportService: reportService,
		redisClient:   redisClient,
		generator:     generator.NewClaimGenerator(),
	}
}

// GetDashboard возвращает сводку и последние транзакции текущего снимка
// @Summary Получить данные дашборда
// @Description Возвращает сводку последнего проанализированного датасета и хвост из 20 последних записей
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} models.DashboardResponse "Данные дашборда"
// @Failure 400 {object} map[string]string "Bad Request - ни один датасет еще не загружен"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dashboard [get]
func (h *ReportHandlers) GetDashboard(c *gin.Context) {
	dashboard, err := h.reportService.Dashboard()
	if err != nil {
		if errors.Is(err, snapshot.ErrNoSnapshot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No dataset uploaded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetClaims возвращает последние записи текущего снимка
// @Summary Получить список заявок
// @Description Возвращает хвост последних записей текущего снимка в порядке загрузки
// @Tags reports
// @Accept json
// @Produce json
// @Param limit query int false "Лимит результатов (максимум 500)" default(50)
// @Success 200 {object} map[string]interface{} "Список заявок"
// @Failure 400 {object} map[string]string "Bad Request - ни один датасет еще не загружен"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /claims [get]
func (h *ReportHandlers) GetClaims(c *gin.Context) {
	limit := services.ClaimsTailLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	claims, err := h.reportService.Claims(limit)
	if err != nil {
		if errors.Is(err, snapshot.ErrNoSnapshot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No dataset uploaded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get claims"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"claims": claims})
}

// GetFraudAlerts возвращает записи, превысившие порог оповещения
// @Summary Получить фрод-оповещения
// @Description Возвращает записи текущего снимка, чей риск превысил порог оповещения
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} models.FraudAlertsResponse "Список оповещений"
// @Failure 400 {object} map[string]string "Bad Request - ни один датасет еще не загружен"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /fraud-alerts [get]
func (h *ReportHandlers) GetFraudAlerts(c *gin.Context) {
	alerts, err := h.reportService.FraudAlerts()
	if err != nil {
		if errors.Is(err, snapshot.ErrNoSnapshot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No dataset uploaded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get fraud alerts"})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// GetWatchlist возвращает получателей из списка наблюдения
// @Summary Получить список наблюдения
// @Description Возвращает получателей с высоким риском, накопленных в Redis по всем датасетам
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Список наблюдения"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /watchlist [get]
func (h *ReportHandlers) GetWatchlist(c *gin.Context) {
	citizens, err := h.redisClient.GetWatchlist()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"watchlist": citizens})
}

// SimulateAttack моделирует атаку на реестр выплат
// @Summary Смоделировать атаку
// @Description Генерирует случайный сценарий атаки на реестр выплат с рекомендуемым действием
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} models.ThreatAlert "Обнаруженная угроза"
// @Router /simulate-attack [post]
func (h *ReportHandlers) SimulateAttack(c *gin.Context) {
	alert := h.generator.GenerateThreatAlert()

	logger.LogEvent(logger.EventThreatSimulated, "analysis-service", "api", map[string]interface{}{
		"threat":   alert.Threat,
		"severity": alert.Severity,
	})
	log.Printf("Simulated threat: %s (severity=%s)", alert.Threat, alert.Severity)

	c.JSON(http.StatusOK, alert)
}
