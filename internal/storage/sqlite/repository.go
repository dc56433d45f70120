package sqlite

import (
	"time"

	"welfare-fraud-system/internal/models"
	"welfare-fraud-system/internal/storage"
)

// Repository реализует интерфейсы DatasetRepository и OfficerRepository для SQLite
type Repository struct {
	storage *SQLiteStorage
}

// NewRepository создает новый репозиторий SQLite
func NewRepository(storage *SQLiteStorage) *Repository {
	return &Repository{storage: storage}
}

// Убеждаемся, что Repository реализует интерфейсы хранилища
var _ storage.DatasetRepository = (*Repository)(nil)
var _ storage.OfficerRepository = (*Repository)(nil)

// SaveDataset сохраняет очищенный датасет со статусом pending_analysis
func (r *Repository) SaveDataset(datasetID string, sourceFile string, records []models.Record) error {
	return r.storage.SaveDataset(datasetID, sourceFile, records)
}

// GetDatasetStatus получает статус датасета по dataset_id
func (r *Repository) GetDatasetStatus(datasetID string) (*models.DatasetStatus, error) {
	return r.storage.GetDatasetStatus(datasetID)
}

// GetDatasetRecords получает записи датасета в порядке загрузки
func (r *Repository) GetDatasetRecords(datasetID string) ([]models.Record, error) {
	return r.storage.GetDatasetRecords(datasetID)
}

// GetLatestDatasetID возвращает dataset_id последнего загруженного датасета
func (r *Repository) GetLatestDatasetID() (string, error) {
	return r.storage.GetLatestDatasetID()
}

// UpdateDatasetAnalysis записывает результаты анализа по каждой записи и сводку
func (r *Repository) UpdateDatasetAnalysis(datasetID string, records []models.Record, summary *models.Summary, analyzedAt time.Time) error {
	return r.storage.UpdateDatasetAnalysis(datasetID, records, summary, analyzedAt)
}

// GetAllDatasets получает датасеты из БД, начиная с последних
func (r *Repository) GetAllDatasets(limit int) ([]*models.DatasetStatus, error) {
	return r.storage.GetAllDatasets(limit)
}

// ClearAllDatasets удаляет все датасеты и их записи из БД
func (r *Repository) ClearAllDatasets() error {
	return r.storage.ClearAllDatasets()
}

// SaveOfficer сохраняет аудитора
func (r *Repository) SaveOfficer(officer *models.Officer) error {
	return r.storage.SaveOfficer(officer)
}

// GetOfficerByEmail получает аудитора по email
func (r *Repository) GetOfficerByEmail(email string) (*models.Officer, error) {
	return r.storage.GetOfficerByEmail(email)
}
