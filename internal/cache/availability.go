package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/fadehouse/barbershop-api/internal/domain/schedule"
)

// SlotCache is a read-through cache for computed availability. The slot
// engine is cheap, the reservation lookups behind it are not; entries are
// short-lived and invalidated on every reservation write.
type SlotCache interface {
	Get(ctx context.Context, barberID uint, date string) ([]schedule.TimeSlot, bool)
	Set(ctx context.Context, barberID uint, date string, slots []schedule.TimeSlot)
	Invalidate(ctx context.Context, barberID uint, date string)
}

const slotTTL = 60 * time.Second

// ---------- redis-backed ----------

type RedisSlotCache struct {
	client *redis.Client
}

func NewRedisSlotCache(addr, password string) *RedisSlotCache {
	return &RedisSlotCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func slotKey(barberID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", barberID, date)
}

func (c *RedisSlotCache) Get(ctx context.Context, barberID uint, date string) ([]schedule.TimeSlot, bool) {
	raw, err := c.client.Get(ctx, slotKey(barberID, date)).Result()
	if err != nil {
		return nil, false
	}

	var slots []schedule.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *RedisSlotCache) Set(ctx context.Context, barberID uint, date string, slots []schedule.TimeSlot) {
	b, err := json.Marshal(slots)
	if err != nil {
		return
	}
	// cache errors are not the caller's problem
	_ = c.client.Set(ctx, slotKey(barberID, date), b, slotTTL).Err()
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, barberID uint, date string) {
	_ = c.client.Del(ctx, slotKey(barberID, date)).Err()
}

// ---------- disabled ----------

// NoopSlotCache is used when no REDIS_ADDR is configured.
type NoopSlotCache struct{}

func NewNoopSlotCache() *NoopSlotCache { return &NoopSlotCache{} }

func (NoopSlotCache) Get(context.Context, uint, string) ([]schedule.TimeSlot, bool) {
	return nil, false
}
func (NoopSlotCache) Set(context.Context, uint, string, []schedule.TimeSlot) {}
func (NoopSlotCache) Invalidate(context.Context, uint, string)               {}

var (
	_ SlotCache = (*RedisSlotCache)(nil)
	_ SlotCache = (*NoopSlotCache)(nil)
)
