package redis

import (
	"welfare-fraud-system/internal/models"
)

// ClientInterface определяет интерфейс для работы с Redis
// Это позволяет легко создавать моки для тестирования
// Реализуется типом Client
type ClientInterface interface {
	// SaveSummary сохраняет сводку проанализированного датасета в Redis
	SaveSummary(datasetID string, summary *models.Summary) error

	// GetSummary получает сводку датасета из Redis
	GetSummary(datasetID string) (*models.Summary, error)

	// IncrementRiskStats увеличивает счетчик записей по категории риска
	IncrementRiskStats(riskLevel string) error

	// GetRiskStats возвращает накопленный счетчик записей по категории риска
	GetRiskStats(riskLevel string) (int64, error)

	// AddToWatchlist добавляет получателя с высоким риском в список наблюдения
	AddToWatchlist(citizenID string) error

	// IsCitizenWatchlisted проверяет, находится ли получатель в списке наблюдения
	IsCitizenWatchlisted(citizenID string) (bool, error)

	// GetWatchlist возвращает всех получателей из списка наблюдения
	GetWatchlist() ([]string, error)

	// ClearAnalysisData очищает все данные анализа из Redis
	ClearAnalysisData() error

	// Close закрывает соединение с Redis
	Close() error
}

// Убеждаемся, что Client реализует ClientInterface
var _ ClientInterface = (*Client)(nil)
