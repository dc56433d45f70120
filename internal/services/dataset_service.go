package services

import (
	"time"

	"github.com/google/uuid"

	"welfare-fraud-system/internal/fraud"
	"welfare-fraud-system/internal/kafka"
	"welfare-fraud-system/internal/logger"
	"welfare-fraud-system/internal/models"
	"welfare-fraud-system/internal/storage"
)

// DatasetServiceImpl реализует интерфейс DatasetService
type DatasetServiceImpl struct {
	repo     storage.DatasetRepository
	producer kafka.Producer
	rules    fraud.RuleSet
}

// NewDatasetService создает новый сервис приема датасетов
func NewDatasetService(repo storage.DatasetRepository, producer kafka.Producer, rules fraud.RuleSet) DatasetService {
	return &DatasetServiceImpl{
		repo:     repo,
		producer: producer,
		rules:    rules,
	}
}

// ProcessUpload очищает датасет, сохраняет его и отправляет событие на анализ.
// Ошибка схемы отклоняет загрузку целиком: прежний снимок остается нетронутым.
func (s *DatasetServiceImpl) ProcessUpload(table *models.RawTable, sourceFile string, uploadedBy string) (*models.UploadResponse, error) {
	records, err := fraud.Clean(table, fraud.CleanOptions{
		FlagDuplicates: s.rules.FlagsDuplicates(),
	})
	if err != nil {
		return nil, err
	}

	datasetID := "ds_" + uuid.New().String()

	// Сохраняем очищенный датасет в БД
	if err := s.repo.SaveDataset(datasetID, sourceFile, records); err != nil {
		return nil, err
	}

	// Создаем событие для Kafka
	event := &models.KafkaDatasetEvent{
		EventID:   "evt_" + uuid.New().String(),
		EventType: "dataset_uploaded",
		Timestamp: time.Now(),
		Data: models.KafkaDatasetData{
			DatasetID:   datasetID,
			SourceFile:  sourceFile,
			RecordCount: len(records),
			UploadedBy:  uploadedBy,
		},
	}

	// Отправляем событие в Kafka
	if err := s.producer.SendDatasetEvent(event); err != nil {
		return nil, err
	}

	// Логируем отправку в Kafka
	logger.LogEvent(logger.EventKafkaSent, "ingestion-service", "kafka", map[string]interface{}{
		"dataset_id":   datasetID,
		"event_id":     event.EventID,
		"record_count": len(records),
	})

	return &models.UploadResponse{
		DatasetID:       datasetID,
		Status:          "pending_analysis",
		RecordsAccepted: len(records),
		Message:         "Dataset accepted for analysis",
	}, nil
}

// GetDatasetStatus возвращает статус датасета
func (s *DatasetServiceImpl) GetDatasetStatus(datasetID string) (*models.DatasetStatusResponse, error) {
	status, err := s.repo.GetDatasetStatus(datasetID)
	if err != nil {
		return nil, err
	}

	if status == nil {
		return nil, nil
	}

	return datasetStatusResponse(status), nil
}

// GetAllDatasets возвращает загруженные датасеты, начиная с последних
func (s *DatasetServiceImpl) GetAllDatasets(limit int) ([]*models.DatasetStatusResponse, error) {
	datasets, err := s.repo.GetAllDatasets(limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.DatasetStatusResponse, 0, len(datasets))
	for _, ds := range datasets {
		responses = append(responses, datasetStatusResponse(ds))
	}

	return responses, nil
}

// ClearAllDatasets удаляет все датасеты
func (s *DatasetServiceImpl) ClearAllDatasets() error {
	return s.repo.ClearAllDatasets()
}

func datasetStatusResponse(status *models.DatasetStatus) *models.DatasetStatusResponse {
	return &models.DatasetStatusResponse{
		DatasetID:     status.DatasetID,
		SourceFile:    status.SourceFile,
		RecordCount:   status.RecordCount,
		Status:        status.Status,
		FraudDetected: status.FraudDetected,
		AvgRiskScore:  status.AvgRiskScore,
		AnalyzedAt:    status.AnalyzedAt,
	}
}
