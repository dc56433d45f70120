package sqlite

import (
	"fmt"
	"time"

	"welfare-fraud-system/internal/models"
)

// UpdateDatasetAnalysis записывает результаты анализа по каждой записи и сводку датасета.
// Выполняется одной транзакцией: сводка в БД никогда не расходится с баллами записей.
func (s *SQLiteStorage) UpdateDatasetAnalysis(
	datasetID string,
	records []models.Record,
	summary *models.Summary,
	analyzedAt time.Time,
) error {
	return retryOperation(func() error {
		tx, err := s.DB.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer tx.Rollback()

		stmt, err := tx.Prepare(
			`UPDATE claim_records
			 SET risk_score = ?, risk_level = ?, duplicate_flag = ?
			 WHERE dataset_id = ? AND citizen_id = ?`,
		)
		if err != nil {
			return fmt.Errorf("failed to prepare update: %w", err)
		}
		defer stmt.Close()

		for _, record := range records {
			_, err = stmt.Exec(
				record.RiskScore, record.RiskLevel, boolToInt(record.DuplicateFlag),
				datasetID, record.CitizenID,
			)
			if err != nil {
				return fmt.Errorf("failed to update record %s: %w", record.CitizenID, err)
			}
		}

		_, err = tx.Exec(
			`UPDATE datasets
			 SET status = 'analyzed',
			     fraud_detected = ?,
			     avg_risk_score = ?,
			     analyzed_at = ?,
			     updated_at = CURRENT_TIMESTAMP
			 WHERE dataset_id = ?`,
			summary.FraudDetected, summary.AvgRiskScore, analyzedAt, datasetID,
		)
		if err != nil {
			return fmt.Errorf("failed to update dataset: %w", err)
		}

		return tx.Commit()
	}, 3, 100*time.Millisecond)
}
