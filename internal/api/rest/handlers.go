package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"welfare-fraud-system/internal/fraud"
	"welfare-fraud-system/internal/generator"
	"welfare-fraud-system/internal/logger"
	"welfare-fraud-system/internal/services"
	"welfare-fraud-system/internal/upload"

	"github.com/gin-gonic/gin"
)

// Максимальный размер загружаемого файла датасета (10 МБ)
const maxUploadSize = 10 << 20

type Handlers struct {
	datasetService services.DatasetService
	authService    services.AuthService
	generator      *generator.ClaimGenerator
}

// Создает новые обработчики REST API
func NewHandlers(datasetService services.DatasetService, authService services.AuthService) *Handlers {
	return &Handlers{
		datasetService: datasetService,
		authService:    authService,
		generator:      generator.NewClaimGenerator(),
	}
}

// HandleUpload обрабатывает POST запрос на загрузку датасета выплат
// @Summary Загрузить датасет на анализ
// @Description Принимает CSV или XLSX файл с заявками социальной схемы, нормализует заголовки, очищает записи и отправляет датасет на асинхронный анализ рисков через Kafka.
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV или XLSX файл с заявками"
// @Param uploaded_by formData string false "Email загрузившего аудитора"
// @Success 201 {object} models.UploadResponse "Датасет принят на анализ"
// @Failure 400 {object} map[string]string "Bad Request - битый файл или отсутствуют обязательные колонки"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /datasets/upload [post]
func (h *Handlers) HandleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	table, err := upload.ParseDataset(data, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Логируем получение датасета
	logger.LogEvent(logger.EventDatasetReceived, "ingestion-service", "api", map[string]interface{}{
		"source_file": fileHeader.Filename,
		"row_count":   len(table.Rows),
	})

	uploadedBy := c.PostForm("uploaded_by")

	response, err := h.datasetService.ProcessUpload(table, fileHeader.Filename, uploadedBy)
	if err != nil {
		var schemaErr *fraud.SchemaError
		if errors.As(err, &schemaErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": schemaErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process dataset"})
		return
	}

	// Логируем сохранение в БД
	logger.LogEvent(logger.EventDatasetSaved, "ingestion-service", "sqlite", map[string]interface{}{
		"dataset_id":       response.DatasetID,
		"records_accepted": response.RecordsAccepted,
		"status":           response.Status,
	})

	c.JSON(http.StatusCreated, response)
}

// GetAllDatasets возвращает список загруженных датасетов
// @Summary Получить список датасетов
// @Description Возвращает загруженные датасеты, начиная с последних
// @Tags datasets
// @Accept json
// @Produce json
// @Param limit query int false "Лимит результатов (максимум 500)" default(100)
// @Success 200 {object} map[string]interface{} "Список датасетов"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /datasets [get]
func (h *Handlers) GetAllDatasets(c *gin.Context) {
	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	datasets, err := h.datasetService.GetAllDatasets(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get datasets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"datasets": datasets})
}

// GetDatasetStatus возвращает статус датасета по dataset_id
// @Summary Получить статус датасета
// @Description Возвращает состояние обработки датасета и итоги анализа, если он завершен
// @Tags datasets
// @Accept json
// @Produce json
// @Param dataset_id path string true "ID датасета"
// @Success 200 {object} models.DatasetStatusResponse "Статус датасета"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /datasets/{dataset_id} [get]
func (h *Handlers) GetDatasetStatus(c *gin.Context) {
	datasetID := c.Param("dataset_id")

	status, err := h.datasetService.GetDatasetStatus(datasetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dataset status"})
		return
	}

	if status == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// ClearAllDatasets очищает все датасеты
// @Summary Очистить все датасеты
// @Description Удаляет все датасеты и их записи из базы данных
// @Tags datasets
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Датасеты очищены"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /datasets [delete]
func (h *Handlers) ClearAllDatasets(c *gin.Context) {
	if err := h.datasetService.ClearAllDatasets(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear datasets"})
		return
	}

	logger.LogEvent(logger.EventDBUpdated, "ingestion-service", "sqlite", map[string]interface{}{
		"action": "database_cleared",
	})

	c.JSON(http.StatusOK, gin.H{
		"message":       "All datasets cleared successfully",
		"clear_storage": true,
	})
}

// GenerateSampleDataset генерирует случайный датасет заявок
// @Summary Сгенерировать тестовый датасет
// @Description Генерирует таблицу случайных заявок с сырыми заголовками для тестирования конвейера очистки
// @Tags datasets
// @Accept json
// @Produce json
// @Param count query int false "Количество строк (максимум 1000)" default(50)
// @Success 200 {object} models.RawTable "Сгенерированная таблица"
// @Router /datasets/generate [get]
func (h *Handlers) GenerateSampleDataset(c *gin.Context) {
	count := 50
	if countStr := c.Query("count"); countStr != "" {
		if parsed, err := strconv.Atoi(countStr); err == nil && parsed > 0 && parsed <= 1000 {
			count = parsed
		}
	}

	table := h.generator.GenerateRawTable(count)
	c.JSON(http.StatusOK, table)
}
