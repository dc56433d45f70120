package redis

import (
	"context"
)

const watchlistKey = "watchlist:citizens"

// AddToWatchlist добавляет получателя с высоким риском в список наблюдения.
// Список переживает смену снимка: получатель, однажды попавший в HIGH,
// остается под наблюдением до явной очистки.
func (c *Client) AddToWatchlist(citizenID string) error {
	ctx := context.Background()
	return c.rdb.SAdd(ctx, watchlistKey, citizenID).Err()
}

// IsCitizenWatchlisted проверяет, находится ли получатель в списке наблюдения
func (c *Client) IsCitizenWatchlisted(citizenID string) (bool, error) {
	ctx := context.Background()
	return c.rdb.SIsMember(ctx, watchlistKey, citizenID).Result()
}

// GetWatchlist возвращает всех получателей из списка наблюдения
func (c *Client) GetWatchlist() ([]string, error) {
	ctx := context.Background()
	return c.rdb.SMembers(ctx, watchlistKey).Result()
}
