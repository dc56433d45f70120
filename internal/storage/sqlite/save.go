package sqlite

import (
	"fmt"
	"time"

	"welfare-fraud-system/internal/models"
)

// SaveDataset сохраняет очищенный датасет со статусом pending_analysis.
// Метаданные и записи пишутся в одной транзакции: частично сохраненный
// датасет никогда не виден анализатору.
func (s *SQLiteStorage) SaveDataset(datasetID string, sourceFile string, records []models.Record) error {
	return retryOperation(func() error {
		tx, err := s.DB.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer tx.Rollback()

		_, err = tx.Exec(
			`INSERT INTO datasets (dataset_id, source_file, record_count, status)
			 VALUES (?, ?, ?, 'pending_analysis')`,
			datasetID, sourceFile, len(records),
		)
		if err != nil {
			return fmt.Errorf("failed to insert dataset: %w", err)
		}

		stmt, err := tx.Prepare(
			`INSERT INTO claim_records (
				dataset_id, position, citizen_id, aadhaar_verified,
				claim_count, account_status, scheme_amount, duplicate_flag
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, record := range records {
			_, err = stmt.Exec(
				datasetID, i, record.CitizenID, record.AadhaarVerified,
				record.ClaimCount, record.AccountStatus, record.SchemeAmount,
				boolToInt(record.DuplicateFlag),
			)
			if err != nil {
				return fmt.Errorf("failed to insert record %d: %w", i, err)
			}
		}

		return tx.Commit()
	}, 3, 100*time.Millisecond)
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
