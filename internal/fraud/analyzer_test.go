package fraud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welfare-fraud-system/internal/models"
)

func TestAnalyzer_Analyze(t *testing.T) {
	analyzer := NewAnalyzer(LedgerRules())

	records := []models.Record{
		{CitizenID: "C-001", AadhaarVerified: "FALSE", ClaimCount: 5, AccountStatus: "SUSPENDED", SchemeAmount: 9000}, // 100 HIGH
		{CitizenID: "C-002", AadhaarVerified: "TRUE", ClaimCount: 1, AccountStatus: "ACTIVE", SchemeAmount: 1200},     // 0 LOW
		{CitizenID: "C-003", AadhaarVerified: "FALSE", ClaimCount: 1, AccountStatus: "ACTIVE", SchemeAmount: 1000},    // 40 MEDIUM
	}

	analyzed, summary := analyzer.Analyze(records)
	require.Len(t, analyzed, 3)

	assert.Equal(t, 100, analyzed[0].RiskScore)
	assert.Equal(t, RiskLevelHigh, analyzed[0].RiskLevel)
	assert.Equal(t, 0, analyzed[1].RiskScore)
	assert.Equal(t, RiskLevelLow, analyzed[1].RiskLevel)
	assert.Equal(t, 40, analyzed[2].RiskScore)
	assert.Equal(t, RiskLevelMedium, analyzed[2].RiskLevel)

	assert.Equal(t, 3, summary.TotalTransactions)
	assert.Equal(t, 1, summary.FraudDetected)
	assert.Equal(t, 1, summary.HighRisk)
	assert.Equal(t, 1, summary.MediumRisk)
	assert.Equal(t, 1, summary.LowRisk)
	assert.Equal(t, 0, summary.Duplicates)

	// (100 + 0 + 40) / 3 = 46.67, ledger_integrity = 100 - round(1/3*100) = 67
	assert.Equal(t, 46.67, summary.AvgRiskScore)
	assert.Equal(t, 67, summary.LedgerIntegrity)
}

func TestAnalyzer_Analyze_EmptyDataset(t *testing.T) {
	analyzer := NewAnalyzer(LedgerRules())

	analyzed, summary := analyzer.Analyze([]models.Record{})

	assert.Empty(t, analyzed)
	assert.Equal(t, 0, summary.TotalTransactions)
	assert.Equal(t, 0, summary.FraudDetected)
	assert.Equal(t, 0.0, summary.AvgRiskScore)
	assert.Equal(t, 100, summary.LedgerIntegrity)
}

func TestAnalyzer_Analyze_DoesNotMutateInput(t *testing.T) {
	analyzer := NewAnalyzer(LedgerRules())

	records := []models.Record{
		{CitizenID: "C-001", AadhaarVerified: "FALSE", ClaimCount: 5, AccountStatus: "SUSPENDED", SchemeAmount: 9000},
	}

	analyzed, _ := analyzer.Analyze(records)

	assert.Equal(t, 100, analyzed[0].RiskScore)
	assert.Equal(t, 0, records[0].RiskScore)
	assert.Empty(t, records[0].RiskLevel)
}

func TestAnalyzer_Analyze_AllFraud(t *testing.T) {
	analyzer := NewAnalyzer(LedgerRules())

	records := []models.Record{
		{CitizenID: "C-001", AadhaarVerified: "FALSE", ClaimCount: 5, AccountStatus: "CLOSED", SchemeAmount: 9000},
		{CitizenID: "C-002", AadhaarVerified: "NO", ClaimCount: 8, AccountStatus: "FROZEN", SchemeAmount: 7000},
	}

	_, summary := analyzer.Analyze(records)

	assert.Equal(t, 2, summary.FraudDetected)
	assert.Equal(t, 0, summary.LedgerIntegrity)
}

func TestAnalyzer_Analyze_CountsDuplicates(t *testing.T) {
	analyzer := NewAnalyzer(AuditRules())

	records := []models.Record{
		{CitizenID: "C-001", AadhaarVerified: "TRUE", DuplicateFlag: true},
		{CitizenID: "C-002", AadhaarVerified: "TRUE"},
	}

	analyzed, summary := analyzer.Analyze(records)

	assert.Equal(t, 1, summary.Duplicates)
	assert.Equal(t, 40, analyzed[0].RiskScore)
}

func TestAnalyzer_Alerts(t *testing.T) {
	analyzer := NewAnalyzer(LedgerRules())

	records := []models.Record{
		{CitizenID: "C-001", RiskScore: 100},
		{CitizenID: "C-002", RiskScore: 70},
		{CitizenID: "C-003", RiskScore: 80},
		{CitizenID: "C-004", RiskScore: 0},
	}

	alerts := analyzer.Alerts(records, 50)
	require.Len(t, alerts, 2)

	// Ровно 70 не превышает порог, порядок загрузки сохраняется
	assert.Equal(t, "C-001", alerts[0].CitizenID)
	assert.Equal(t, "C-003", alerts[1].CitizenID)
}

func TestAnalyzer_Alerts_TruncatedToLimit(t *testing.T) {
	analyzer := NewAnalyzer(LedgerRules())

	records := make([]models.Record, 60)
	for i := range records {
		records[i] = models.Record{CitizenID: "C", RiskScore: 100}
	}

	alerts := analyzer.Alerts(records, 50)
	assert.Len(t, alerts, 50)
}

func TestRecentTransactions(t *testing.T) {
	records := []models.Record{
		{CitizenID: "C-001"},
		{CitizenID: "C-002"},
		{CitizenID: "C-003"},
	}

	tail := RecentTransactions(records, 2)
	require.Len(t, tail, 2)
	assert.Equal(t, "C-002", tail[0].CitizenID)
	assert.Equal(t, "C-003", tail[1].CitizenID)

	// Хвост длиннее датасета возвращает весь датасет
	assert.Len(t, RecentTransactions(records, 10), 3)
	assert.Empty(t, RecentTransactions(records, 0))
}

func TestRecentTransactions_ReturnsCopy(t *testing.T) {
	records := []models.Record{{CitizenID: "C-001"}}

	tail := RecentTransactions(records, 1)
	tail[0].CitizenID = "mutated"

	assert.Equal(t, "C-001", records[0].CitizenID)
}
