package fraud

import (
	"welfare-fraud-system/internal/models"
)

// MaxRiskScore — жесткий потолок балла риска, не превышается ни при каком наборе правил
const MaxRiskScore = 100

const (
	RiskLevelHigh   = "HIGH"
	RiskLevelMedium = "MEDIUM"
	RiskLevelLow    = "LOW"
)

// RuleSet описывает аддитивный набор правил скоринга. Все пороги, веса и
// отсечки именованы и переопределяемы: в исходных выгрузках сосуществуют
// несколько конкурирующих вариантов, и тесты фиксируют каждый из них отдельно.
// Вес 0 отключает правило.
type RuleSet struct {
	Name string

	// Частые заявки: claim_count >= порога
	ClaimCountThreshold int
	ClaimCountWeight    int

	// Верификация Aadhaar: значение не из списка допустимых считается риском
	AcceptedAadhaarValues []string
	AadhaarWeight         int

	// Статус счета: любое значение, кроме активного, считается риском
	ActiveAccountStatus string
	AccountStatusWeight int

	// Крупная выплата по схеме
	AmountThreshold float64
	AmountInclusive bool
	AmountWeight    int

	// Дубликат получателя. Требует вычисления duplicate_flag до дедупликации
	DuplicateWeight int

	// Отсечка "мошенничество обнаружено" для сводки
	FraudScoreCutoff int
	FraudInclusive   bool

	// Отсечка списка оповещений (строже, чем fraud_detected)
	AlertScoreCutoff int

	// Границы категорий риска, нижние границы включительно
	HighRiskCutoff   int
	MediumRiskCutoff int
}

// LedgerRules возвращает основной набор правил реестра выплат:
// claim_count >= 4 -> +30, aadhaar != TRUE -> +40,
// account_status != ACTIVE -> +20, scheme_amount >= 5000 -> +10,
// мошенничество при score > 60, оповещения при score > 70.
func LedgerRules() RuleSet {
	return RuleSet{
		Name:                  "ledger",
		ClaimCountThreshold:   4,
		ClaimCountWeight:      30,
		AcceptedAadhaarValues: []string{"TRUE"},
		AadhaarWeight:         40,
		ActiveAccountStatus:   "ACTIVE",
		AccountStatusWeight:   20,
		AmountThreshold:       5000,
		AmountInclusive:       true,
		AmountWeight:          10,
		DuplicateWeight:       0,
		FraudScoreCutoff:      60,
		FraudInclusive:        false,
		AlertScoreCutoff:      70,
		HighRiskCutoff:        70,
		MediumRiskCutoff:      40,
	}
}

// AuditRules возвращает альтернативный аудиторский набор правил:
// aadhaar не из {TRUE, YES} -> +40, дубликат получателя -> +40,
// scheme_amount > 50000 -> +20. Дубликаты помечаются до дедупликации,
// мошенничеством считается категория HIGH (score >= 70).
func AuditRules() RuleSet {
	return RuleSet{
		Name:                  "audit",
		ClaimCountWeight:      0,
		AcceptedAadhaarValues: []string{"TRUE", "YES"},
		AadhaarWeight:         40,
		AccountStatusWeight:   0,
		AmountThreshold:       50000,
		AmountInclusive:       false,
		AmountWeight:          20,
		DuplicateWeight:       40,
		FraudScoreCutoff:      70,
		FraudInclusive:        true,
		AlertScoreCutoff:      70,
		HighRiskCutoff:        70,
		MediumRiskCutoff:      40,
	}
}

// RuleSetByName возвращает предустановку по имени, по умолчанию ledger
func RuleSetByName(name string) RuleSet {
	switch name {
	case "audit":
		return AuditRules()
	default:
		return LedgerRules()
	}
}

// Score вычисляет балл риска одной записи. Чистая функция очищенных полей:
// без побочных эффектов и без зависимости от других записей.
// Результат всегда в диапазоне [0, MaxRiskScore].
func (rs RuleSet) Score(r *models.Record) int {
	score := 0

	if rs.ClaimCountWeight > 0 && r.ClaimCount >= rs.ClaimCountThreshold {
		score += rs.ClaimCountWeight
	}

	if rs.AadhaarWeight > 0 && !rs.aadhaarAccepted(r.AadhaarVerified) {
		score += rs.AadhaarWeight
	}

	if rs.AccountStatusWeight > 0 && r.AccountStatus != rs.ActiveAccountStatus {
		score += rs.AccountStatusWeight
	}

	if rs.AmountWeight > 0 && rs.amountTriggered(r.SchemeAmount) {
		score += rs.AmountWeight
	}

	if rs.DuplicateWeight > 0 && r.DuplicateFlag {
		score += rs.DuplicateWeight
	}

	if score > MaxRiskScore {
		score = MaxRiskScore
	}
	return score
}

// Flags возвращает имена сработавших правил для журналирования и оповещений
func (rs RuleSet) Flags(r *models.Record) []string {
	var flags []string

	if rs.ClaimCountWeight > 0 && r.ClaimCount >= rs.ClaimCountThreshold {
		flags = append(flags, "high_claim_frequency")
	}
	if rs.AadhaarWeight > 0 && !rs.aadhaarAccepted(r.AadhaarVerified) {
		flags = append(flags, "aadhaar_unverified")
	}
	if rs.AccountStatusWeight > 0 && r.AccountStatus != rs.ActiveAccountStatus {
		flags = append(flags, "inactive_account")
	}
	if rs.AmountWeight > 0 && rs.amountTriggered(r.SchemeAmount) {
		flags = append(flags, "high_scheme_amount")
	}
	if rs.DuplicateWeight > 0 && r.DuplicateFlag {
		flags = append(flags, "duplicate_beneficiary")
	}

	return flags
}

// RiskLevel определяет категорию риска по баллу
func (rs RuleSet) RiskLevel(score int) string {
	if score >= rs.HighRiskCutoff {
		return RiskLevelHigh
	}
	if score >= rs.MediumRiskCutoff {
		return RiskLevelMedium
	}
	return RiskLevelLow
}

// IsFraud сообщает, учитывается ли балл в счетчике fraud_detected
func (rs RuleSet) IsFraud(score int) bool {
	if rs.FraudInclusive {
		return score >= rs.FraudScoreCutoff
	}
	return score > rs.FraudScoreCutoff
}

// IsAlert сообщает, попадает ли балл в список оповещений о мошенничестве
func (rs RuleSet) IsAlert(score int) bool {
	return score > rs.AlertScoreCutoff
}

// FlagsDuplicates сообщает, нужен ли этому набору правил duplicate_flag
func (rs RuleSet) FlagsDuplicates() bool {
	return rs.DuplicateWeight > 0
}

func (rs RuleSet) aadhaarAccepted(value string) bool {
	for _, accepted := range rs.AcceptedAadhaarValues {
		if value == accepted {
			return true
		}
	}
	return false
}

func (rs RuleSet) amountTriggered(amount float64) bool {
	if rs.AmountInclusive {
		return amount >= rs.AmountThreshold
	}
	return amount > rs.AmountThreshold
}
