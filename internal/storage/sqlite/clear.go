package sqlite

// ClearAllDatasets удаляет все датасеты и их записи из БД
func (s *SQLiteStorage) ClearAllDatasets() error {
	if _, err := s.DB.Exec(`DELETE FROM claim_records`); err != nil {
		return err
	}
	_, err := s.DB.Exec(`DELETE FROM datasets`)
	return err
}
