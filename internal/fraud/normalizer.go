package fraud

import (
	"strings"
)

// columnAliases сопоставляет распространенные варианты заголовков каноническим именам.
// Ключи записаны уже после trim+lower, но до замены пробелов на подчеркивания.
var columnAliases = map[string]string{
	"citizen id":         "citizen_id",
	"citizenid":          "citizen_id",
	"aadhaar verified":   "aadhaar_verified",
	"aadhaar status":     "aadhaar_verified",
	"aadhaar_linked":     "aadhaar_verified",
	"claim count":        "claim_count",
	"claims":             "claim_count",
	"account status":     "account_status",
	"status":             "account_status",
	"scheme amount":      "scheme_amount",
	"amount":             "scheme_amount",
	"scheme eligibility": "scheme_eligibility",
}

// NormalizeHeaders приводит заголовки таблицы к канонической схеме:
// trim + lower, затем таблица синонимов, затем пробелы -> подчеркивания.
// Нераспознанные заголовки проходят без изменений, ошибок здесь не бывает:
// полноту схемы проверяет очиститель.
func NormalizeHeaders(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		name := strings.ToLower(strings.TrimSpace(header))
		if canonical, ok := columnAliases[name]; ok {
			name = canonical
		}
		normalized[i] = strings.ReplaceAll(name, " ", "_")
	}
	return normalized
}
