package snapshot

import (
	"errors"
	"sync"
	"time"

	"welfare-fraud-system/internal/models"
)

// ErrNoSnapshot возвращается, когда ни один датасет еще не был проанализирован
var ErrNoSnapshot = errors.New("no dataset has been analyzed yet")

// Snapshot представляет текущую пару (датасет, сводка), отдаваемую отчетным запросам.
// Сводка всегда получена ровно из записей этого же снимка.
type Snapshot struct {
	DatasetID  string          `json:"dataset_id"`
	Records    []models.Record `json:"records"`
	Summary    models.Summary  `json:"summary"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
}

// Cache хранит единственный актуальный снимок процесса. Replace меняет обе
// части снимка атомарно, читатели видят либо старое поколение целиком,
// либо новое. Истории нет: прежнее поколение просто отбрасывается.
type Cache struct {
	mu      sync.RWMutex
	current *Snapshot
}

// NewCache создает пустой кэш снимков
func NewCache() *Cache {
	return &Cache{}
}

// Replace атомарно заменяет текущий снимок новой парой (записи, сводка)
func (c *Cache) Replace(datasetID string, records []models.Record, summary *models.Summary) {
	snap := &Snapshot{
		DatasetID:  datasetID,
		Records:    records,
		Summary:    *summary,
		AnalyzedAt: time.Now(),
	}

	c.mu.Lock()
	c.current = snap
	c.mu.Unlock()
}

// Current возвращает актуальный снимок либо ErrNoSnapshot до первой загрузки
func (c *Cache) Current() (*Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current == nil {
		return nil, ErrNoSnapshot
	}
	return c.current, nil
}

// Clear сбрасывает кэш в исходное пустое состояние
func (c *Cache) Clear() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}
