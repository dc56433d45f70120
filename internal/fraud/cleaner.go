package fraud

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"welfare-fraud-system/internal/models"
)

// RequiredColumns содержит канонические колонки, без которых скоринг невозможен
var RequiredColumns = []string{
	"citizen_id",
	"aadhaar_verified",
	"claim_count",
	"account_status",
	"scheme_amount",
}

// SchemaError возвращается, если после нормализации заголовков
// отсутствуют обязательные колонки. Загрузка такого датасета отклоняется целиком.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// CleanOptions управляет поведением очистки
type CleanOptions struct {
	// FlagDuplicates помечает записи с повторяющимся citizen_id ДО дедупликации.
	// Флаг должен вычисляться на сыром датасете: после удаления дубликатов
	// он всегда был бы false. Включается, когда в наборе правил есть вес за дубликат.
	FlagDuplicates bool
}

// Clean проверяет схему, приводит типы полей и удаляет дубликаты по citizen_id.
// Сохраняется первое вхождение каждого citizen_id, порядок записей из источника
// не меняется. Некорректные числовые значения заменяются нулем без ошибки:
// загрузка работает в режиме best-effort, как и остальной конвейер приема.
func Clean(table *models.RawTable, opts CleanOptions) ([]models.Record, error) {
	headers := NormalizeHeaders(table.Headers)

	index := make(map[string]int, len(headers))
	for i, header := range headers {
		if _, ok := index[header]; !ok {
			index[header] = i
		}
	}

	var missing []string
	for _, column := range RequiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	records := make([]models.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		cell := func(column string) string {
			i := index[column]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}

		claimCount, _ := CoerceCount(cell("claim_count"))
		schemeAmount, _ := CoerceAmount(cell("scheme_amount"))

		records = append(records, models.Record{
			CitizenID:       strings.TrimSpace(cell("citizen_id")),
			AadhaarVerified: strings.ToUpper(strings.TrimSpace(cell("aadhaar_verified"))),
			ClaimCount:      claimCount,
			AccountStatus:   strings.ToUpper(strings.TrimSpace(cell("account_status"))),
			SchemeAmount:    schemeAmount,
		})
	}

	if opts.FlagDuplicates {
		markDuplicates(records)
	}

	return dedupeByCitizenID(records), nil
}

// CoerceAmount приводит ячейку к числу. Второе значение false означает,
// что разбор не удался и подставлен ноль.
func CoerceAmount(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// CoerceCount приводит ячейку к целому счетчику. Дробные значения усекаются,
// как при численном приведении в источниках выгрузок.
func CoerceCount(raw string) (int, bool) {
	value, ok := CoerceAmount(raw)
	if !ok {
		return 0, false
	}
	return int(value), true
}

// markDuplicates выставляет duplicate_flag каждой записи,
// чей citizen_id встречается в датасете более одного раза
func markDuplicates(records []models.Record) {
	counts := make(map[string]int, len(records))
	for i := range records {
		counts[records[i].CitizenID]++
	}
	for i := range records {
		records[i].DuplicateFlag = counts[records[i].CitizenID] > 1
	}
}

// dedupeByCitizenID удаляет дубликаты, сохраняя первое вхождение
func dedupeByCitizenID(records []models.Record) []models.Record {
	seen := make(map[string]struct{}, len(records))
	deduped := records[:0]
	for i := range records {
		if _, ok := seen[records[i].CitizenID]; ok {
			continue
		}
		seen[records[i].CitizenID] = struct{}{}
		deduped = append(deduped, records[i])
	}
	return deduped
}
