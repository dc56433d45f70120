package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"welfare-fraud-system/internal/models"
)

// SaveSummary сохраняет сводку проанализированного датасета в Redis с TTL 1 час.
// Кэш — только зеркало для быстрых ответов: источником истины остается снимок.
func (c *Client) SaveSummary(datasetID string, summary *models.Summary) error {
	ctx := context.Background()
	key := fmt.Sprintf("dataset:%s:summary", datasetID)

	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	return c.rdb.Set(ctx, key, data, time.Hour).Err()
}

// GetSummary получает сводку датасета из Redis, nil если ключа нет
func (c *Client) GetSummary(datasetID string) (*models.Summary, error) {
	ctx := context.Background()
	key := fmt.Sprintf("dataset:%s:summary", datasetID)

	data, err := c.rdb.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	var summary models.Summary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}

	return &summary, nil
}
