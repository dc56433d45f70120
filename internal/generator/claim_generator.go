package generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"welfare-fraud-system/internal/models"
)

// ClaimGenerator создает случайные записи социальных схем для демонстраций и тестов
type ClaimGenerator struct {
	rand *rand.Rand
}

func NewClaimGenerator() *ClaimGenerator {
	return &ClaimGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateRecord генерирует запись с заданной категорией риска
// относительно основного набора правил реестра
func (g *ClaimGenerator) GenerateRecord(riskLevel string) models.Record {
	record := models.Record{
		CitizenID: fmt.Sprintf("CIT-%09d", g.rand.Intn(1000000000)),
	}

	switch riskLevel {
	case "HIGH":
		g.generateHighRisk(&record)
	case "MEDIUM":
		g.generateMediumRisk(&record)
	default:
		g.generateLowRisk(&record)
	}

	return record
}

// generateLowRisk генерирует запись без сработавших правил (0 баллов)
func (g *ClaimGenerator) generateLowRisk(record *models.Record) {
	record.ClaimCount = g.rand.Intn(4)                        // меньше порога частых заявок
	record.AadhaarVerified = "TRUE"                           // верифицирован
	record.AccountStatus = "ACTIVE"                           // активный счет
	record.SchemeAmount = 100 + g.rand.Float64()*4800         // меньше порога крупной выплаты
}

// generateMediumRisk генерирует запись с баллом 40-60
func (g *ClaimGenerator) generateMediumRisk(record *models.Record) {
	variant := g.rand.Intn(3)

	switch variant {
	case 0:
		// Частые заявки + крупная выплата = 30 + 10 = 40 баллов
		record.ClaimCount = 4 + g.rand.Intn(6)
		record.AadhaarVerified = "TRUE"
		record.AccountStatus = "ACTIVE"
		record.SchemeAmount = 5000 + g.rand.Float64()*20000
	case 1:
		// Нет верификации Aadhaar = 40 баллов
		record.ClaimCount = g.rand.Intn(4)
		record.AadhaarVerified = "FALSE"
		record.AccountStatus = "ACTIVE"
		record.SchemeAmount = 100 + g.rand.Float64()*4800
	default:
		// Частые заявки + неактивный счет = 30 + 20 = 50 баллов
		record.ClaimCount = 4 + g.rand.Intn(6)
		record.AadhaarVerified = "TRUE"
		record.AccountStatus = "SUSPENDED"
		record.SchemeAmount = 100 + g.rand.Float64()*4800
	}
}

// generateHighRisk генерирует запись с баллом 70+
func (g *ClaimGenerator) generateHighRisk(record *models.Record) {
	// Нет верификации + неактивный счет + крупная выплата = 40 + 20 + 10 = 70 баллов,
	// частые заявки добавляют еще 30 до потолка
	record.ClaimCount = 4 + g.rand.Intn(8)
	record.AadhaarVerified = "FALSE"
	record.AccountStatus = g.pickInactiveStatus()
	record.SchemeAmount = 5000 + g.rand.Float64()*60000
}

// GenerateRawTable генерирует сырую таблицу из случайных записей.
// Небольшая доля строк дублирует citizen_id, чтобы конвейер очистки
// было на чем проверять.
func (g *ClaimGenerator) GenerateRawTable(total int) *models.RawTable {
	if total <= 0 {
		total = 50
	}

	table := &models.RawTable{
		Headers: []string{"Citizen ID", "Aadhaar Verified", "Claim Count", "Account Status", "Scheme Amount"},
		Rows:    make([][]string, 0, total),
	}

	levels := []string{"LOW", "LOW", "LOW", "MEDIUM", "HIGH"}
	var previousID string

	for i := 0; i < total; i++ {
		record := g.GenerateRecord(levels[g.rand.Intn(len(levels))])

		// Примерно каждая десятая строка повторяет предыдущий citizen_id
		if previousID != "" && g.rand.Intn(10) == 0 {
			record.CitizenID = previousID
		}
		previousID = record.CitizenID

		table.Rows = append(table.Rows, []string{
			record.CitizenID,
			record.AadhaarVerified,
			strconv.Itoa(record.ClaimCount),
			record.AccountStatus,
			strconv.FormatFloat(record.SchemeAmount, 'f', 2, 64),
		})
	}

	return table
}

func (g *ClaimGenerator) pickInactiveStatus() string {
	statuses := []string{"SUSPENDED", "FROZEN", "CLOSED", "DORMANT"}
	return statuses[g.rand.Intn(len(statuses))]
}
