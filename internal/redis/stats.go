package redis

import (
	"context"
	"fmt"

	redisv9 "github.com/redis/go-redis/v9"
)

// IncrementRiskStats увеличивает счетчик проанализированных записей по категории риска
func (c *Client) IncrementRiskStats(riskLevel string) error {
	ctx := context.Background()
	key := fmt.Sprintf("risk_stats:%s", riskLevel)
	return c.rdb.Incr(ctx, key).Err()
}

// GetRiskStats возвращает накопленный счетчик записей по категории риска
func (c *Client) GetRiskStats(riskLevel string) (int64, error) {
	ctx := context.Background()
	key := fmt.Sprintf("risk_stats:%s", riskLevel)
	count, err := c.rdb.Get(ctx, key).Int64()
	if err == redisv9.Nil {
		return 0, nil
	}
	return count, err
}
