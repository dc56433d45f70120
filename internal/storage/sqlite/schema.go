package sqlite

// initSchema инициализирует схему БД
func (s *SQLiteStorage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS datasets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset_id TEXT UNIQUE NOT NULL,
		source_file TEXT,
		record_count INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending_analysis',
		fraud_detected INTEGER,
		avg_risk_score REAL,
		analyzed_at DATETIME,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS claim_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		citizen_id TEXT NOT NULL,
		aadhaar_verified TEXT NOT NULL,
		claim_count INTEGER NOT NULL,
		account_status TEXT NOT NULL,
		scheme_amount REAL NOT NULL,
		duplicate_flag INTEGER NOT NULL DEFAULT 0,
		risk_score INTEGER,
		risk_level TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS officers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		department TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_datasets_dataset_id ON datasets(dataset_id);
	CREATE INDEX IF NOT EXISTS idx_datasets_created_at ON datasets(created_at);
	CREATE INDEX IF NOT EXISTS idx_records_dataset_id ON claim_records(dataset_id);
	CREATE INDEX IF NOT EXISTS idx_records_citizen_id ON claim_records(citizen_id);
	CREATE INDEX IF NOT EXISTS idx_records_position ON claim_records(dataset_id, position);
	CREATE INDEX IF NOT EXISTS idx_officers_email ON officers(email);
	`

	_, err := s.DB.Exec(query)
	return err
}
