package analysis

import (
	"log"

	"welfare-fraud-system/internal/config"
	"welfare-fraud-system/internal/fraud"
	"welfare-fraud-system/internal/kafka"
	"welfare-fraud-system/internal/models"
	"welfare-fraud-system/internal/redis"
	"welfare-fraud-system/internal/services"
	"welfare-fraud-system/internal/snapshot"
	"welfare-fraud-system/internal/storage"
	"welfare-fraud-system/internal/storage/sqlite"
)

// Dependencies содержит все зависимости для analysis service
type Dependencies struct {
	StorageConn     *sqlite.SQLiteStorage
	DatasetRepo     storage.DatasetRepository
	RedisClient     *redis.Client
	Rules           fraud.RuleSet
	DatasetAnalyzer services.DatasetAnalyzer
	SnapshotCache   *snapshot.Cache
	ReportService   services.ReportService
	KafkaConsumer   kafka.Consumer
}

// InitializeDependencies инициализирует все зависимости для analysis service
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	storageRepo := sqlite.NewRepository(storageConn)

	// Инициализация Redis
	log.Println("Connecting to Redis...")
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Redis connection established")

	// Предустановка правил скоринга
	rules := fraud.RuleSetByName(cfg.Risk.RuleSet)
	log.Printf("Using risk rule set: %s", rules.Name)

	datasetAnalyzer := services.NewDatasetAnalyzer(rules)
	snapshotCache := snapshot.NewCache()
	reportService := services.NewReportService(snapshotCache, rules)

	// Настройка обработчика Kafka событий
	handler := func(event *models.KafkaDatasetEvent) error {
		return processDataset(event, storageRepo, redisClient, datasetAnalyzer, snapshotCache)
	}

	// Инициализация Kafka Consumer
	log.Println("Connecting to Kafka...")
	consumer, err := kafka.NewConsumer(cfg, handler)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka consumer connected successfully")

	return &Dependencies{
		StorageConn:     storageConn,
		DatasetRepo:     storageRepo,
		RedisClient:     redisClient,
		Rules:           rules,
		DatasetAnalyzer: datasetAnalyzer,
		SnapshotCache:   snapshotCache,
		ReportService:   reportService,
		KafkaConsumer:   consumer,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaConsumer != nil {
		if err := d.KafkaConsumer.Close(); err != nil {
			return err
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
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
