package storage

import (
	"errors"
	"time"

	"welfare-fraud-system/internal/models"
)

// ErrDuplicateEmail возвращается при попытке зарегистрировать аудитора
// с уже занятым email
var ErrDuplicateEmail = errors.New("officer with this email already exists")

// DatasetRepository определяет интерфейс для работы с датасетами в хранилище
type DatasetRepository interface {
	// SaveDataset сохраняет очищенный датасет со статусом pending_analysis
	SaveDataset(datasetID string, sourceFile string, records []models.Record) error

	// GetDatasetStatus получает статус датасета по dataset_id
	GetDatasetStatus(datasetID string) (*models.DatasetStatus, error)

	// GetDatasetRecords получает записи датасета в порядке загрузки
	GetDatasetRecords(datasetID string) ([]models.Record, error)

	// GetLatestDatasetID возвращает dataset_id последнего загруженного датасета
	GetLatestDatasetID() (string, error)

	// UpdateDatasetAnalysis записывает результаты анализа по каждой записи и сводку
	UpdateDatasetAnalysis(datasetID string, records []models.Record, summary *models.Summary, analyzedAt time.Time) error

	// GetAllDatasets получает датасеты из БД, начиная с последних
	GetAllDatasets(limit int) ([]*models.DatasetStatus, error)

	// ClearAllDatasets удаляет все датасеты и их записи из БД
	ClearAllDatasets() error
}

// OfficerRepository определяет интерфейс для работы с аудиторами в хранилище
type OfficerRepository interface {
	// SaveOfficer сохраняет аудитора, возвращает ErrDuplicateEmail при занятом email
	SaveOfficer(officer *models.Officer) error

	// GetOfficerByEmail получает аудитора по email, nil если не найден
	GetOfficerByEmail(email string) (*models.Officer, error)
}
