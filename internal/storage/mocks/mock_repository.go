package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"welfare-fraud-system/internal/models"
)

// MockDatasetRepository является моком для storage.DatasetRepository интерфейса
type MockDatasetRepository struct {
	mock.Mock
}

// SaveDataset мок для SaveDataset
func (m *MockDatasetRepository) SaveDataset(datasetID string, sourceFile string, records []models.Record) error {
	args := m.Called(datasetID, sourceFile, records)
	return args.Error(0)
}

// GetDatasetStatus мок для GetDatasetStatus
func (m *MockDatasetRepository) GetDatasetStatus(datasetID string) (*models.DatasetStatus, error) {
	args := m.Called(datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DatasetStatus), args.Error(1)
}

// GetDatasetRecords мок для GetDatasetRecords
func (m *MockDatasetRepository) GetDatasetRecords(datasetID string) ([]models.Record, error) {
	args := m.Called(datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Record), args.Error(1)
}

// GetLatestDatasetID мок для GetLatestDatasetID
func (m *MockDatasetRepository) GetLatestDatasetID() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// UpdateDatasetAnalysis мок для UpdateDatasetAnalysis
func (m *MockDatasetRepository) UpdateDatasetAnalysis(datasetID string, records []models.Record, summary *models.Summary, analyzedAt time.Time) error {
	args := m.Called(datasetID, records, summary, analyzedAt)
	return args.Error(0)
}

// GetAllDatasets мок для GetAllDatasets
func (m *MockDatasetRepository) GetAllDatasets(limit int) ([]*models.DatasetStatus, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DatasetStatus), args.Error(1)
}

// ClearAllDatasets мок для ClearAllDatasets
func (m *MockDatasetRepository) ClearAllDatasets() error {
	args := m.Called()
	return args.Error(0)
}

// MockOfficerRepository является моком для storage.OfficerRepository интерфейса
type MockOfficerRepository struct {
	mock.Mock
}

// SaveOfficer мок для SaveOfficer
func (m *MockOfficerRepository) SaveOfficer(officer *models.Officer) error {
	args := m.Called(officer)
	return args.Error(0)
}

// GetOfficerByEmail мок для GetOfficerByEmail
func (m *MockOfficerRepository) GetOfficerByEmail(email string) (*models.Officer, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Officer), args.Error(1)
}
