package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB     DBConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Server ServerConfig
	Risk   RiskConfig
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type KafkaConfig struct {
	Brokers         []string
	DatasetTopic    string
	AnalyzedTopic   string
	ConsumerGroupID string
}

type ServerConfig struct {
	IngestionPort int
	AnalysisPort  int
}

type RiskConfig struct {
	// RuleSet выбирает предустановку правил скоринга: ledger или audit
	RuleSet string
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/welfare_fraud.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Brokers:         []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			DatasetTopic:    getEnv("KAFKA_DATASET_TOPIC", "welfare.datasets.uploaded"),
			AnalyzedTopic:   getEnv("KAFKA_ANALYZED_TOPIC", "welfare.datasets.analyzed"),
			ConsumerGroupID: getEnv("KAFKA_CONSUMER_GROUP", "fraud-analysis-group"),
		},
		Server: ServerConfig{
			IngestionPort: getEnvAsInt("INGESTION_SERVICE_PORT", 8080),
			AnalysisPort:  getEnvAsInt("ANALYSIS_SERVICE_PORT", 8081),
		},
		Risk: RiskConfig{
			RuleSet: getEnv("RISK_RULESET", "ledger"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
