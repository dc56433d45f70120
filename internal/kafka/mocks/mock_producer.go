package mocks

import (
	"github.com/stretchr/testify/mock"

	"welfare-fraud-system/internal/models"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// SendDatasetEvent мок для SendDatasetEvent
func (m *MockProducer) SendDatasetEvent(event *models.KafkaDatasetEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
