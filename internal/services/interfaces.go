package services

import (
	"welfare-fraud-system/internal/models"
)

// DatasetService определяет интерфейс приема датасетов
type DatasetService interface {
	// ProcessUpload очищает датасет, сохраняет его и отправляет событие на анализ
	ProcessUpload(table *models.RawTable, sourceFile string, uploadedBy string) (*models.UploadResponse, error)

	// GetDatasetStatus возвращает статус датасета
	GetDatasetStatus(datasetID string) (*models.DatasetStatusResponse, error)

	// GetAllDatasets возвращает загруженные датасеты, начиная с последних
	GetAllDatasets(limit int) ([]*models.DatasetStatusResponse, error)

	// ClearAllDatasets удаляет все датасеты
	ClearAllDatasets() error
}

// DatasetAnalyzer определяет интерфейс для анализа рисков датасета
type DatasetAnalyzer interface {
	// AnalyzeDataset оценивает каждую запись и строит сводку
	AnalyzeDataset(records []models.Record) ([]models.Record, *models.Summary)
}

// ReportService определяет интерфейс отчетных запросов поверх текущего снимка
type ReportService interface {
	// Dashboard возвращает сводку и хвост последних транзакций
	Dashboard() (*models.DashboardResponse, error)

	// Claims возвращает последние записи текущего снимка
	Claims(limit int) ([]models.Record, error)

	// FraudAlerts возвращает записи, превысившие порог оповещения
	FraudAlerts() (*models.FraudAlertsResponse, error)
}

// AuthService определяет интерфейс регистрации и входа аудиторов
type AuthService interface {
	// Register регистрирует нового аудитора
	Register(req *models.RegisterRequest) (*models.AuthResponse, error)

	// Login проверяет учетные данные аудитора
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
}
