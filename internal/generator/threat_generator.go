package generator

import (
	"welfare-fraud-system/internal/models"
)

var threatScenarios = []string{
	"Duplicate beneficiary injection attempt",
	"Mass claim bot attack detected",
	"Ledger tampering attempt",
	"Fake Aadhaar batch upload",
	"High-value scheme exploit detected",
}

var threatSeverities = []string{"LOW", "MEDIUM", "HIGH"}

// GenerateThreatAlert генерирует случайный сценарий атаки на реестр выплат
func (g *ClaimGenerator) GenerateThreatAlert() *models.ThreatAlert {
	return &models.ThreatAlert{
		Status:            "attack_detected",
		Threat:            threatScenarios[g.rand.Intn(len(threatScenarios))],
		Severity:          threatSeverities[g.rand.Intn(len(threatSeverities))],
		RecommendedAction: "Trigger audit + freeze suspicious accounts",
	}
}
