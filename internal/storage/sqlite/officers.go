package sqlite

import (
	"database/sql"
	"strings"

	"welfare-fraud-system/internal/models"
	"welfare-fraud-system/internal/storage"
)

// SaveOfficer сохраняет аудитора, возвращает ErrDuplicateEmail при занятом email
func (s *SQLiteStorage) SaveOfficer(officer *models.Officer) error {
	query := `
		INSERT INTO officers (name, email, password_hash, department, role)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.DB.Exec(
		query,
		officer.Name, officer.Email, officer.PasswordHash,
		officer.Department, officer.Role,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return storage.ErrDuplicateEmail
	}

	return err
}

// GetOfficerByEmail получает аудитора по email, nil если не найден
func (s *SQLiteStorage) GetOfficerByEmail(email string) (*models.Officer, error) {
	query := `
		SELECT id, name, email, password_hash, department, role, created_at
		FROM officers
		WHERE email = ?
	`

	var officer models.Officer
	err := s.DB.QueryRow(query, email).Scan(
		&officer.ID, &officer.Name, &officer.Email, &officer.PasswordHash,
		&officer.Department, &officer.Role, &officer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &officer, nil
}
