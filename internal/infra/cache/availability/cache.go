package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

// Cache кэш дневной доступности в Redis.
// Ключ - день одного тура; любое изменение занятости этого дня
// инвалидирует ключ (DEL), следующий читатель наполняет кэш заново.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кэш доступности с заданным TTL
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func dayKey(tourID int64, date time.Time) string {
	return fmt.Sprintf("avail:%d:%s", tourID, date.Format(domain.DateFormat))
}

// GetDay читает слоты дня из кэша. Второй результат false - промах.
func (c *Cache) GetDay(ctx context.Context, tourID int64, date time.Time) ([]*domain.AvailabilitySlot, bool, error) {
	data, err := c.client.Get(ctx, dayKey(tourID, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("availability.cache: get day: %w", err)
	}

	var slots []*domain.AvailabilitySlot
	if err := json.Unmarshal(data, &slots); err != nil {
		// Повреждённое значение считаем промахом - его перезапишут
		return nil, false, nil
	}

	return slots, true, nil
}

// SetDay сохраняет слоты дня в кэш
func (c *Cache) SetDay(ctx context.Context, tourID int64, date time.Time, slots []*domain.AvailabilitySlot) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("availability.cache: marshal day: %w", err)
	}

	if err := c.client.Set(ctx, dayKey(tourID, date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("availability.cache: set day: %w", err)
	}

	return nil
}

// InvalidateDay удаляет ключ дня
func (c *Cache) InvalidateDay(ctx context.Context, tourID int64, date time.Time) error {
	if err := c.client.Del(ctx, dayKey(tourID, date)).Err(); err != nil {
		return fmt.Errorf("availability.cache: invalidate day: %w", err)
	}
	return nil
}
