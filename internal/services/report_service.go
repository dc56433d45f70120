package services

import (
	"time"

	"welfare-fraud-system/internal/fraud"
	"welfare-fraud-system/internal/models"
	"welfare-fraud-system/internal/snapshot"
)

// ClaimsTailLimit — размер хвоста записей для списка заявок по умолчанию
const ClaimsTailLimit = 50

// ReportServiceImpl реализует интерфейс ReportService поверх кэша снимков.
// Читает только снимок: пара (записи, сводка) гарантированно согласована.
type ReportServiceImpl struct {
	cache    *snapshot.Cache
	analyzer *fraud.Analyzer
}

// NewReportService создает новый сервис отчетов
func NewReportService(cache *snapshot.Cache, rules fraud.RuleSet) ReportService {
	return &ReportServiceImpl{
		cache:    cache,
		analyzer: fraud.NewAnalyzer(rules),
	}
}

// Dashboard возвращает сводку и хвост последних транзакций текущего снимка
func (s *ReportServiceImpl) Dashboard() (*models.DashboardResponse, error) {
	snap, err := s.cache.Current()
	if err != nil {
		return nil, err
	}

	return &models.DashboardResponse{
		DatasetID:    snap.DatasetID,
		Summary:      snap.Summary,
		Transactions: fraud.RecentTransactions(snap.Records, fraud.RecentTransactionLimit),
		AnalyzedAt:   snap.AnalyzedAt.Format(time.RFC3339),
	}, nil
}

// Claims возвращает последние записи текущего снимка в порядке загрузки
func (s *ReportServiceImpl) Claims(limit int) ([]models.Record, error) {
	snap, err := s.cache.Current()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = ClaimsTailLimit
	}
	return fraud.RecentTransactions(snap.Records, limit), nil
}

// FraudAlerts возвращает записи, превысившие порог оповещения
func (s *ReportServiceImpl) FraudAlerts() (*models.FraudAlertsResponse, error) {
	snap, err := s.cache.Current()
	if err != nil {
		return nil, err
	}

	return &models.FraudAlertsResponse{
		Alerts: s.analyzer.Alerts(snap.Records, ClaimsTailLimit),
	}, nil
}
