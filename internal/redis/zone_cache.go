package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"patrolwatch/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ZoneCache keeps the active zone set per station hot in Redis so the
// compliance evaluator does not hit Postgres on every breadcrumb.
type ZoneCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewZoneCache(r *Redis, ttl time.Duration) *ZoneCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ZoneCache{client: r.Client, ttl: ttl}
}

func stationKey(stationID uuid.UUID) string {
	return fmt.Sprintf("zones:active:%s", stationID)
}

// GetActive returns the cached active zones for a station, or nil on a miss.
func (c *ZoneCache) GetActive(ctx context.Context, stationID uuid.UUID) ([]domain.Zone, error) {
	data, err := c.client.Get(ctx, stationKey(stationID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var zones []domain.Zone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (c *ZoneCache) SetActive(ctx context.Context, stationID uuid.UUID, zones []domain.Zone) error {
	b, err := json.Marshal(zones)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, stationKey(stationID), b, c.ttl).Err()
}

// Invalidate drops the cached set after a zone mutation.
func (c *ZoneCache) Invalidate(ctx context.Context, stationID uuid.UUID) error {
	return c.client.Del(ctx, stationKey(stationID)).Err()
}
