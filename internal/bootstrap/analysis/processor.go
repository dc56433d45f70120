package analysis

import (
	"log"
	"time"

	"welfare-fraud-system/internal/fraud"
	"welfare-fraud-system/internal/logger"
	"welfare-fraud-system/internal/models"
	"welfare-fraud-system/internal/redis"
	"welfare-fraud-system/internal/services"
	"welfare-fraud-system/internal/snapshot"
	"welfare-fraud-system/internal/storage"
)

// processDataset обрабатывает датасет из Kafka события
func processDataset(
	event *models.KafkaDatasetEvent,
	repo storage.DatasetRepository,
	redisClient redis.ClientInterface,
	analyzer services.DatasetAnalyzer,
	cache *snapshot.Cache,
) error {
	datasetID := event.Data.DatasetID
	log.Printf("Processing dataset: %s", datasetID)

	logger.LogEvent(logger.EventKafkaReceived, "analysis-service", "kafka", map[string]interface{}{
		"dataset_id":   datasetID,
		"event_id":     event.EventID,
		"record_count": event.Data.RecordCount,
	})

	logger.LogEvent(logger.EventAnalysisStarted, "analysis-service", "analyzer", map[string]interface{}{
		"dataset_id": datasetID,
	})

	// Событие отправляется только после коммита транзакции записи,
	// поэтому записи уже должны быть в БД
	records, err := repo.GetDatasetRecords(datasetID)
	if err != nil {
		log.Printf("Error loading dataset %s: %v", datasetID, err)
		return err
	}
	if len(records) == 0 {
		// Не возвращаем ошибку, чтобы не блокировать обработку других датасетов
		log.Printf("Dataset not found or empty: %s", datasetID)
		return nil
	}

	analyzed, summary := analyzer.AnalyzeDataset(records)
	analyzedAt := time.Now()

	logger.LogEvent(logger.EventAnalysisCompleted, "analysis-service", "analyzer", map[string]interface{}{
		"dataset_id":       datasetID,
		"fraud_detected":   summary.FraudDetected,
		"avg_risk_score":   summary.AvgRiskScore,
		"ledger_integrity": summary.LedgerIntegrity,
	})

	// Фиксируем результаты анализа в SQLite
	if err := repo.UpdateDatasetAnalysis(datasetID, analyzed, summary, analyzedAt); err != nil {
		log.Printf("Error updating dataset in DB: %v", err)
		return err
	}

	logger.LogEvent(logger.EventDBUpdated, "analysis-service", "sqlite", map[string]interface{}{
		"dataset_id":     datasetID,
		"status":         "analyzed",
		"fraud_detected": summary.FraudDetected,
	})

	// Публикуем снимок: записи и сводка заменяются одной операцией
	cache.Replace(datasetID, analyzed, summary)

	logger.LogEvent(logger.EventSnapshotReplaced, "analysis-service", "snapshot", map[string]interface{}{
		"dataset_id":   datasetID,
		"record_count": len(analyzed),
	})

	mirrorToRedis(datasetID, analyzed, summary, redisClient)

	log.Printf("Dataset %s analyzed: records=%d, fraud_detected=%d, ledger_integrity=%d",
		datasetID, len(analyzed), summary.FraudDetected, summary.LedgerIntegrity)

	return nil
}

// mirrorToRedis зеркалирует итоги анализа в Redis.
// Ошибки Redis не прерывают обработку: SQLite и снимок уже обновлены.
func mirrorToRedis(
	datasetID string,
	records []models.Record,
	summary *models.Summary,
	redisClient redis.ClientInterface,
) {
	if err := redisClient.SaveSummary(datasetID, summary); err != nil {
		log.Printf("Error saving summary to Redis: %v", err)
	} else {
		logger.LogEvent(logger.EventRedisSaved, "analysis-service", "redis", map[string]interface{}{
			"dataset_id":     datasetID,
			"fraud_detected": summary.FraudDetected,
		})
	}

	for _, record := range records {
		if err := redisClient.IncrementRiskStats(record.RiskLevel); err != nil {
			log.Printf("Error updating risk stats: %v", err)
			break
		}
	}

	for _, record := range records {
		if record.RiskLevel != fraud.RiskLevelHigh {
			continue
		}
		if err := redisClient.AddToWatchlist(record.CitizenID); err != nil {
			log.Printf("Error adding citizen to watchlist: %v", err)
			break
		}
	}
}

// restoreLatestSnapshot восстанавливает снимок последнего датасета после рестарта.
// Снимок живет в памяти, поэтому без восстановления отчетные endpoints
// отвечали бы "No dataset uploaded" до следующей загрузки.
func restoreLatestSnapshot(
	repo storage.DatasetRepository,
	analyzer services.DatasetAnalyzer,
	cache *snapshot.Cache,
) error {
	datasetID, err := repo.GetLatestDatasetID()
	if err != nil {
		return err
	}
	if datasetID == "" {
		log.Println("No datasets found, snapshot cache starts empty")
		return nil
	}

	records, err := repo.GetDatasetRecords(datasetID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	analyzed, summary := analyzer.AnalyzeDataset(records)
	cache.Replace(datasetID, analyzed, summary)

	log.Printf("Restored snapshot for dataset %s (%d records)", datasetID, len(analyzed))
	return nil
}
