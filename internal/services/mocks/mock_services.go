package mocks

import (
	"github.com/stretchr/testify/mock"

	"welfare-fraud-system/internal/models"
)

// MockDatasetService является моком для services.DatasetService интерфейса
type MockDatasetService struct {
	mock.Mock
}

// ProcessUpload мок для ProcessUpload
func (m *MockDatasetService) ProcessUpload(table *models.RawTable, sourceFile string, uploadedBy string) (*models.UploadResponse, error) {
	args := m.Called(table, sourceFile, uploadedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadResponse), args.Error(1)
}

// GetDatasetStatus мок для GetDatasetStatus
func (m *MockDatasetService) GetDatasetStatus(datasetID string) (*models.DatasetStatusResponse, error) {
	args := m.Called(datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DatasetStatusResponse), args.Error(1)
}

// GetAllDatasets мок для GetAllDatasets
func (m *MockDatasetService) GetAllDatasets(limit int) ([]*models.DatasetStatusResponse, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DatasetStatusResponse), args.Error(1)
}

// ClearAllDatasets мок для ClearAllDatasets
func (m *MockDatasetService) ClearAllDatasets() error {
	args := m.Called()
	return args.Error(0)
}

// MockReportService является моком для services.ReportService интерфейса
type MockReportService struct {
	mock.Mock
}

// Dashboard мок для Dashboard
func (m *MockReportService) Dashboard() (*models.DashboardResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardResponse), args.Error(1)
}

// Claims мок для Claims
func (m *MockReportService) Claims(limit int) ([]models.Record, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Record), args.Error(1)
}

// FraudAlerts мок для FraudAlerts
func (m *MockReportService) FraudAlerts() (*models.FraudAlertsResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FraudAlertsResponse), args.Error(1)
}

// MockAuthService является моком для services.AuthService интерфейса
type MockAuthService struct {
	mock.Mock
}

// Register мок для Register
func (m *MockAuthService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

// Login мок для Login
func (m *MockAuthService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}
