package mocks

import (
	"github.com/stretchr/testify/mock"

	"welfare-fraud-system/internal/models"
)

// MockClientInterface является моком для redis.ClientInterface
type MockClientInterface struct {
	mock.Mock
}

// SaveSummary мок для SaveSummary
func (m *MockClientInterface) SaveSummary(datasetID string, summary *models.Summary) error {
	args := m.Called(datasetID, summary)
	return args.Error(0)
}

// GetSummary мок для GetSummary
func (m *MockClientInterface) GetSummary(datasetID string) (*models.Summary, error) {
	args := m.Called(datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Summary), args.Error(1)
}

// IncrementRiskStats мок для IncrementRiskStats
func (m *MockClientInterface) IncrementRiskStats(riskLevel string) error {
	args := m.Called(riskLevel)
	return args.Error(0)
}

// GetRiskStats мок для GetRiskStats
func (m *MockClientInterface) GetRiskStats(riskLevel string) (int64, error) {
	args := m.Called(riskLevel)
	return args.Get(0).(int64), args.Error(1)
}

// AddToWatchlist мок для AddToWatchlist
func (m *MockClientInterface) AddToWatchlist(citizenID string) error {
	args := m.Called(citizenID)
	return args.Error(0)
}

// IsCitizenWatchlisted мок для IsCitizenWatchlisted
func (m *MockClientInterface) IsCitizenWatchlisted(citizenID string) (bool, error) {
	args := m.Called(citizenID)
	return args.Bool(0), args.Error(1)
}

// GetWatchlist мок для GetWatchlist
func (m *MockClientInterface) GetWatchlist() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// ClearAnalysisData мок для ClearAnalysisData
func (m *MockClientInterface) ClearAnalysisData() error {
	args := m.Called()
	return args.Error(0)
}

// Close мок для Close
func (m *MockClientInterface) Close() error {
	args := m.Called()
	return args.Error(0)
}
