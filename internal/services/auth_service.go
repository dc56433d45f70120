package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"welfare-fraud-system/internal/auth"
	"welfare-fraud-system/internal/logger"
	"welfare-fraud-system/internal/models"
	"welfare-fraud-system/internal/storage"
)

// OfficerRole — единственная роль, которую получают зарегистрированные аудиторы
const OfficerRole = "Welfare Audit Officer"

// MinPasswordLength — минимальная длина пароля аудитора
const MinPasswordLength = 8

// AllowedDepartments содержит ведомства, за которыми может быть закреплен аудитор
var AllowedDepartments = map[string]bool{
	"Pension": true,
	"Food":    true,
	"Health":  true,
}

// ErrInvalidCredentials возвращается при неверной паре email/пароль
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError описывает отклоненный запрос регистрации
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthServiceImpl реализует интерфейс AuthService
type AuthServiceImpl struct {
	repo storage.OfficerRepository
}

// NewAuthService создает новый сервис аутентификации аудиторов
func NewAuthService(repo storage.OfficerRepository) AuthService {
	return &AuthServiceImpl{repo: repo}
}

// Register регистрирует нового аудитора
func (s *AuthServiceImpl) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	department := strings.TrimSpace(req.Department)

	if name == "" || email == "" || req.Password == "" {
		return nil, &ValidationError{Message: "Name, email, and password are required"}
	}
	if !AllowedDepartments[department] {
		return nil, &ValidationError{Message: fmt.Sprintf("Department must be one of %s", strings.Join(departmentList(), ", "))}
	}
	if len(req.Password) < MinPasswordLength {
		return nil, &ValidationError{Message: fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)}
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	officer := &models.Officer{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Department:   department,
		Role:         OfficerRole,
	}

	if err := s.repo.SaveOfficer(officer); err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventOfficerRegistered, "ingestion-service", "sqlite", map[string]interface{}{
		"email":      email,
		"department": department,
	})

	return &models.AuthResponse{
		Message: "Officer registered successfully",
		User: models.OfficerInfo{
			Name:       name,
			Email:      email,
			Department: department,
			Role:       OfficerRole,
		},
	}, nil
}

// Login проверяет учетные данные аудитора
func (s *AuthServiceImpl) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	officer, err := s.repo.GetOfficerByEmail(email)
	if err != nil {
		return nil, err
	}

	if officer == nil || !auth.VerifyPassword(req.Password, officer.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	logger.LogEvent(logger.EventOfficerLogin, "ingestion-service", "sqlite", map[string]interface{}{
		"email": email,
	})

	return &models.AuthResponse{
		Message: "Login successful",
		User: models.OfficerInfo{
			Name:       officer.Name,
			Email:      officer.Email,
			Department: officer.Department,
			Role:       officer.Role,
		},
	}, nil
}

func departmentList() []string {
	departments := make([]string, 0, len(AllowedDepartments))
	for department := range AllowedDepartments {
		departments = append(departments, department)
	}
	sort.Strings(departments)
	return departments
}
