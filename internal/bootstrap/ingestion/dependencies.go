package ingestion

import (
	"log"

	"welfare-fraud-system/internal/config"
	"welfare-fraud-system/internal/fraud"
	"welfare-fraud-system/internal/kafka"
	"welfare-fraud-system/internal/services"
	"welfare-fraud-system/internal/storage"
	"welfare-fraud-system/internal/storage/sqlite"
)

// Dependencies содержит все зависимости для ingestion service
type Dependencies struct {
	StorageConn    *sqlite.SQLiteStorage
	DatasetRepo    storage.DatasetRepository
	OfficerRepo    storage.OfficerRepository
	KafkaProducer  kafka.Producer
	DatasetService services.DatasetService
	AuthService    services.AuthService
}

// InitializeDependencies инициализирует все зависимости для ingestion service
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	storageRepo := sqlite.NewRepository(storageConn)

	// Инициализация Kafka Producer
	log.Println("Connecting to Kafka...")
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka producer connected successfully")

	// Предустановка правил скоринга определяет, нужны ли флаги дубликатов
	rules := fraud.RuleSetByName(cfg.Risk.RuleSet)
	log.Printf("Using risk rule set: %s", rules.Name)

	datasetService := services.NewDatasetService(storageRepo, producer, rules)
	authService := services.NewAuthService(storageRepo)

	return &Dependencies{
		StorageConn:    storageConn,
		DatasetRepo:    storageRepo,
		OfficerRepo:    storageRepo,
		KafkaProducer:  producer,
		DatasetService: datasetService,
		AuthService:    authService,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			return err
		}
	}
	if d.StorageConn != nil {
		if err := d.StorageConn.Close(); err != nil {
			return err
		}
	}
	return nil
}
