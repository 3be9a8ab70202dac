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

// AlertWebhookPayload is pushed to the station control-room integration on
// alert lifecycle changes.
type AlertWebhookPayload struct {
	Alert    domain.Alert `json:"alert"`
	EventKey string       `json:"event"`
	QueuedAt time.Time    `json:"queued_at"`
}

type WebhookQueue struct {
	client *redis.Client
	key    string
}

func NewWebhookQueue(client *redis.Client, key string) *WebhookQueue {
	return &WebhookQueue{client: client, key: key}
}

func (q *WebhookQueue) Enqueue(ctx context.Context, payload AlertWebhookPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// EnqueueAlert wraps an alert lifecycle change for delivery.
func (q *WebhookQueue) EnqueueAlert(ctx context.Context, alert domain.Alert, eventKey string) error {
	return q.Enqueue(ctx, AlertWebhookPayload{
		Alert:    alert,
		EventKey: eventKey,
		QueuedAt: time.Now().UTC(),
	})
}

func (q *WebhookQueue) BRPop(ctx context.Context, timeout time.Duration) (AlertWebhookPayload, error) {
	var p AlertWebhookPayload

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}
