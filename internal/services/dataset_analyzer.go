package services

import (
	"welfare-fraud-system/internal/fraud"
	"welfare-fraud-system/internal/models"
)

// DatasetAnalyzerImpl реализует интерфейс DatasetAnalyzer
type DatasetAnalyzerImpl struct {
	analyzer *fraud.Analyzer
}

// NewDatasetAnalyzer создает новый анализатор датасетов
func NewDatasetAnalyzer(rules fraud.RuleSet) DatasetAnalyzer {
	return &DatasetAnalyzerImpl{analyzer: fraud.NewAnalyzer(rules)}
}

// AnalyzeDataset оценивает каждую запись и строит сводку
func (a *DatasetAnalyzerImpl) AnalyzeDataset(records []models.Record) ([]models.Record, *models.Summary) {
	return a.analyzer.Analyze(records)
}
