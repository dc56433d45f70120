package redis

import (
	"context"
	"fmt"
)

// ClearAnalysisData очищает все данные анализа из Redis, включая список наблюдения
func (c *Client) ClearAnalysisData() error {
	ctx := context.Background()

	// Удаляем все ключи, связанные с анализом датасетов
	patterns := []string{
		"dataset:*",
		"risk_stats:*",
		"watchlist:*",
	}

	for _, pattern := range patterns {
		iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			c.rdb.Del(ctx, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to clear pattern %s: %w", pattern, err)
		}
	}

	return nil
}
