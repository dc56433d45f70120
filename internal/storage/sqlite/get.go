package sqlite

import (
	"database/sql"

	"welfare-fraud-system/internal/models"
)

// GetDatasetStatus получает статус датасета по dataset_id
func (s *SQLiteStorage) GetDatasetStatus(datasetID string) (*models.DatasetStatus, error) {
	query := `
		SELECT id, dataset_id, source_file, record_count, status,
		       fraud_detected, avg_risk_score, analyzed_at, created_at, updated_at
		FROM datasets
		WHERE dataset_id = ?
	`

	var ds models.DatasetStatus
	err := s.DB.QueryRow(query, datasetID).Scan(
		&ds.ID, &ds.DatasetID, &ds.SourceFile, &ds.RecordCount, &ds.Status,
		&ds.FraudDetected, &ds.AvgRiskScore, &ds.AnalyzedAt,
		&ds.CreatedAt, &ds.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ds, nil
}

// GetDatasetRecords получает записи датасета в порядке загрузки
func (s *SQLiteStorage) GetDatasetRecords(datasetID string) ([]models.Record, error) {
	query := `
		SELECT citizen_id, aadhaar_verified, claim_count, account_status,
		       scheme_amount, duplicate_flag, risk_score, risk_level
		FROM claim_records
		WHERE dataset_id = ?
		ORDER BY position ASC
	`

	rows, err := s.DB.Query(query, datasetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var record models.Record
		var duplicateFlag int
		var riskScore sql.NullInt64
		var riskLevel sql.NullString

		err := rows.Scan(
			&record.CitizenID, &record.AadhaarVerified, &record.ClaimCount,
			&record.AccountStatus, &record.SchemeAmount, &duplicateFlag,
			&riskScore, &riskLevel,
		)
		if err != nil {
			return nil, err
		}

		record.DuplicateFlag = duplicateFlag != 0
		if riskScore.Valid {
			record.RiskScore = int(riskScore.Int64)
		}
		if riskLevel.Valid {
			record.RiskLevel = riskLevel.String
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

// GetLatestDatasetID возвращает dataset_id последнего загруженного датасета.
// Пустая строка без ошибки означает, что датасетов еще нет.
func (s *SQLiteStorage) GetLatestDatasetID() (string, error) {
	query := `SELECT dataset_id FROM datasets ORDER BY id DESC LIMIT 1`

	var datasetID string
	err := s.DB.QueryRow(query).Scan(&datasetID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return datasetID, nil
}

// GetAllDatasets получает датасеты из БД, начиная с последних
func (s *SQLiteStorage) GetAllDatasets(limit int) ([]*models.DatasetStatus, error) {
	query := `
		SELECT id, dataset_id, source_file, record_count, status,
		       fraud_detected, avg_risk_score, analyzed_at, created_at, updated_at
		FROM datasets
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []*models.DatasetStatus
	for rows.Next() {
		var ds models.DatasetStatus
		err := rows.Scan(
			&ds.ID, &ds.DatasetID, &ds.SourceFile, &ds.RecordCount, &ds.Status,
			&ds.FraudDetected, &ds.AvgRiskScore, &ds.AnalyzedAt,
			&ds.CreatedAt, &ds.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, &ds)
	}

	return datasets, rows.Err()
}
