package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welfare-fraud-system/internal/fraud"
	"welfare-fraud-system/internal/models"
	"welfare-fraud-system/internal/snapshot"
)

func analyzedSnapshot(t *testing.T, cache *snapshot.Cache, total int) {
	t.Helper()

	analyzer := fraud.NewAnalyzer(fraud.LedgerRules())
	records := make([]models.Record, total)
	for i := range records {
		records[i] = models.Record{
			CitizenID:       "C-" + string(rune('A'+i%26)) + "-" + string(rune('0'+i%10)),
			AadhaarVerified: "TRUE",
			AccountStatus:   "ACTIVE",
			SchemeAmount:    1000,
		}
	}
	// Последняя запись всегда тревожная
	records[total-1] = models.Record{
		CitizenID:       "C-FRAUD",
		AadhaarVerified: "FALSE",
		ClaimCount:      5,
		AccountStatus:   "CLOSED",
		SchemeAmount:    9000,
	}

	analyzed, summary := analyzer.Analyze(records)
	cache.Replace("ds_1", analyzed, summary)
}

func TestReportService_Dashboard(t *testing.T) {
	cache := snapshot.NewCache()
	service := NewReportService(cache, fraud.LedgerRules())

	analyzedSnapshot(t, cache, 30)

	dashboard, err := service.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, "ds_1", dashboard.DatasetID)
	assert.Equal(t, 30, dashboard.Summary.TotalTransactions)
	assert.Equal(t, 1, dashboard.Summary.FraudDetected)
	assert.NotEmpty(t, dashboard.AnalyzedAt)

	// Хвост из 20 последних записей, порядок загрузки сохранен
	require.Len(t, dashboard.Transactions, 20)
	assert.Equal(t, "C-FRAUD", dashboard.Transactions[19].CitizenID)
	assert.Equal(t, 100, dashboard.Transactions[19].RiskScore)
}

func TestReportService_Dashboard_NoSnapshot(t *testing.T) {
	service := NewReportService(snapshot.NewCache(), fraud.LedgerRules())

	_, err := service.Dashboard()
	assert.ErrorIs(t, err, snapshot.ErrNoSnapshot)
}

func TestReportService_Claims(t *testing.T) {
	cache := snapshot.NewCache()
	service := NewReportService(cache, fraud.LedgerRules())

	analyzedSnapshot(t, cache, 80)

	claims, err := service.Claims(0)
	require.NoError(t, err)
	assert.Len(t, claims, ClaimsTailLimit)

	claims, err = service.Claims(10)
	require.NoError(t, err)
	assert.Len(t, claims, 10)
	assert.Equal(t, "C-FRAUD", claims[9].CitizenID)
}

func TestReportService_Claims_NoSnapshot(t *testing.T) {
	service := NewReportService(snapshot.NewCache(), fraud.LedgerRules())

	_, err := service.Claims(10)
	assert.ErrorIs(t, err, snapshot.ErrNoSnapshot)
}

func TestReportService_FraudAlerts(t *testing.T) {
	cache := snapshot.NewCache()
	service := NewReportService(cache, fraud.LedgerRules())

	analyzedSnapshot(t, cache, 30)

	alerts, err := service.FraudAlerts()
	require.NoError(t, err)

	// Порог оповещений превышает только запись со 100 баллами
	require.Len(t, alerts.Alerts, 1)
	assert.Equal(t, "C-FRAUD", alerts.Alerts[0].CitizenID)
}

func TestReportService_FraudAlerts_NoSnapshot(t *testing.T) {
	service := NewReportService(snapshot.NewCache(), fraud.LedgerRules())

	_, err := service.FraudAlerts()
	assert.ErrorIs(t, err, snapshot.ErrNoSnapshot)
}

func TestDatasetAnalyzer_AnalyzeDataset(t *testing.T) {
	analyzer := NewDatasetAnalyzer(fraud.LedgerRules())

	records := []models.Record{
		{CitizenID: "C-001", AadhaarVerified: "FALSE", ClaimCount: 5, AccountStatus: "SUSPENDED", SchemeAmount: 9000},
	}

	analyzed, summary := analyzer.AnalyzeDataset(records)
	require.Len(t, analyzed, 1)
	assert.Equal(t, 100, analyzed[0].RiskScore)
	assert.Equal(t, 1, summary.FraudDetected)
	assert.Equal(t, 0, summary.LedgerIntegrity)
}
