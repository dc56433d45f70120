package models

import (
	"time"
)

// RawTable представляет разобранный табличный файл до нормализации.
// Ячейки приходят как строки: приведение типов выполняется очистителем.
type RawTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Record представляет одну запись (заявку) социальной схемы после очистки
type Record struct {
	CitizenID       string  `json:"citizen_id"`
	AadhaarVerified string  `json:"aadhaar_verified"`
	ClaimCount      int     `json:"claim_count"`
	AccountStatus   string  `json:"account_status"`
	SchemeAmount    float64 `json:"scheme_amount"`
	DuplicateFlag   bool    `json:"duplicate_flag"`
	RiskScore       int     `json:"risk_score"`
	RiskLevel       string  `json:"risk_level,omitempty"`
}

// Summary представляет агрегированную сводку по проанализированному датасету
type Summary struct {
	TotalTransactions int     `json:"total_transactions"`
	FraudDetected     int     `json:"fraud_detected"`
	HighRisk          int     `json:"high_risk"`
	MediumRisk        int     `json:"medium_risk"`
	LowRisk           int     `json:"low_risk"`
	Duplicates        int     `json:"duplicates"`
	AvgRiskScore      float64 `json:"avg_risk_score"`
	LedgerIntegrity   int     `json:"ledger_integrity"`
}

// UploadResponse представляет ответ на загрузку датасета
type UploadResponse struct {
	DatasetID       string `json:"dataset_id"`
	Status          string `json:"status"`
	RecordsAccepted int    `json:"records_accepted"`
	Message         string `json:"message"`
}

// DashboardResponse представляет данные для дашборда:
// сводка плюс хвост последних транзакций в порядке загрузки
type DashboardResponse struct {
	DatasetID    string   `json:"dataset_id"`
	Summary      Summary  `json:"summary"`
	Transactions []Record `json:"transactions"`
	AnalyzedAt   string   `json:"analyzed_at,omitempty"`
}

// FraudAlertsResponse представляет список записей, превысивших порог оповещения
type FraudAlertsResponse struct {
	Alerts []Record `json:"alerts"`
}

// DatasetStatus представляет статус датасета в БД
type DatasetStatus struct {
	ID            int64      `db:"id"`
	DatasetID     string     `db:"dataset_id"`
	SourceFile    string     `db:"source_file"`
	RecordCount   int        `db:"record_count"`
	Status        string     `db:"status"`
	FraudDetected *int       `db:"fraud_detected"`
	AvgRiskScore  *float64   `db:"avg_risk_score"`
	AnalyzedAt    *time.Time `db:"analyzed_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// DatasetStatusResponse представляет ответ на запрос статуса датасета
type DatasetStatusResponse struct {
	DatasetID     string     `json:"dataset_id"`
	SourceFile    string     `json:"source_file"`
	RecordCount   int        `json:"record_count"`
	Status        string     `json:"status"`
	FraudDetected *int       `json:"fraud_detected,omitempty"`
	AvgRiskScore  *float64   `json:"avg_risk_score,omitempty"`
	AnalyzedAt    *time.Time `json:"analyzed_at,omitempty"`
}

// KafkaDatasetEvent представляет событие датасета в Kafka
type KafkaDatasetEvent struct {
	EventID   string           `json:"event_id"`
	EventType string           `json:"event_type"`
	Timestamp time.Time        `json:"timestamp"`
	Data      KafkaDatasetData `json:"data"`
}

// KafkaDatasetData представляет данные события датасета в Kafka
type KafkaDatasetData struct {
	DatasetID   string `json:"dataset_id"`
	SourceFile  string `json:"source_file"`
	RecordCount int    `json:"record_count"`
	UploadedBy  string `json:"uploaded_by,omitempty"`
}

// ThreatAlert представляет смоделированную атаку на реестр выплат
type ThreatAlert struct {
	Status            string `json:"status"`
	Threat            string `json:"threat"`
	Severity          string `json:"severity"`
	RecommendedAction string `json:"recommended_action"`
}
