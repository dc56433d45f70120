package fraud

import (
	"math"

	"welfare-fraud-system/internal/models"
)

// RecentTransactionLimit — размер хвоста последних транзакций для дашборда
const RecentTransactionLimit = 20

// Analyzer применяет набор правил к датасету и строит агрегированную сводку
type Analyzer struct {
	rules RuleSet
}

// NewAnalyzer создает новый анализатор датасетов
func NewAnalyzer(rules RuleSet) *Analyzer {
	return &Analyzer{rules: rules}
}

// Rules возвращает действующий набор правил
func (a *Analyzer) Rules() RuleSet {
	return a.rules
}

// Analyze оценивает каждую запись независимо и считает сводку за один проход.
// Записи между собой не связаны, порядок их обработки значения не имеет.
// Пустой датасет — корректный вход: сводка получает безопасные значения
// по умолчанию, а не ошибку деления на ноль.
func (a *Analyzer) Analyze(records []models.Record) ([]models.Record, *models.Summary) {
	annotated := make([]models.Record, len(records))
	copy(annotated, records)

	summary := &models.Summary{
		AvgRiskScore:    0.0,
		LedgerIntegrity: 100,
	}

	if len(annotated) == 0 {
		return annotated, summary
	}

	scoreTotal := 0
	for i := range annotated {
		score := a.rules.Score(&annotated[i])
		annotated[i].RiskScore = score
		annotated[i].RiskLevel = a.rules.RiskLevel(score)
		scoreTotal += score

		switch annotated[i].RiskLevel {
		case RiskLevelHigh:
			summary.HighRisk++
		case RiskLevelMedium:
			summary.MediumRisk++
		default:
			summary.LowRisk++
		}

		if a.rules.IsFraud(score) {
			summary.FraudDetected++
		}
		if annotated[i].DuplicateFlag {
			summary.Duplicates++
		}
	}

	total := len(annotated)
	summary.TotalTransactions = total
	summary.AvgRiskScore = math.Round(float64(scoreTotal)/float64(total)*100) / 100
	summary.LedgerIntegrity = 100 - int(math.Round(float64(summary.FraudDetected)/float64(total)*100))

	return annotated, summary
}

// Alerts возвращает записи, превысившие порог оповещения, обрезанные до limit
// последних в порядке загрузки
func (a *Analyzer) Alerts(records []models.Record, limit int) []models.Record {
	alerts := make([]models.Record, 0)
	for i := range records {
		if a.rules.IsAlert(records[i].RiskScore) {
			alerts = append(alerts, records[i])
		}
	}
	return RecentTransactions(alerts, limit)
}

// RecentTransactions возвращает последние n записей в порядке загрузки.
// Результат — отдельная копия, чтобы снимок не делил память с вызывающим кодом.
func RecentTransactions(records []models.Record, n int) []models.Record {
	if n <= 0 {
		return []models.Record{}
	}
	if len(records) > n {
		records = records[len(records)-n:]
	}
	tail := make([]models.Record, len(records))
	copy(tail, records)
	return tail
}
