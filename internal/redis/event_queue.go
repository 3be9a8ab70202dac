package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"patrolwatch/internal/domain"
	"patrolwatch/pkg/e"

	"github.com/redis/go-redis/v9"
)

// EventQueue carries realtime events from the write paths to the fan-out
// pump. A Redis list keeps the producers non-blocking and gives the hub a
// single consumer.
type EventQueue struct {
	client *redis.Client
	key    string
}

func NewEventQueue(client *redis.Client, key string) *EventQueue {
	return &EventQueue{client: client, key: key}
}

// Publish pushes an event for the pump worker to drain.
func (q *EventQueue) Publish(ctx context.Context, ev domain.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *EventQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.Event, error) {
	var ev domain.Event

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}
