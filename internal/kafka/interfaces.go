package kafka

import (
	"context"

	"welfare-fraud-system/internal/models"
)

// Producer определяет интерфейс для отправки сообщений в Kafka
type Producer interface {
	SendDatasetEvent(event *models.KafkaDatasetEvent) error

	Close() error
}

// Consumer определяет интерфейс для чтения событий датасетов из Kafka
type Consumer interface {
	Start(ctx context.Context) error

	Close() error
}
