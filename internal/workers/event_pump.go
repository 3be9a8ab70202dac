package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"patrolwatch/internal/domain"
	"patrolwatch/internal/redis"
	"patrolwatch/pkg/e"
)

type EventSink interface {
	Dispatch(ev domain.Event)
}

// EventPump drains the Redis event queue into the fan-out hub. It is the
// single consumer, write paths only enqueue and never touch a socket.
type EventPump struct {
	queue  *redis.EventQueue
	sink   EventSink
	logger *slog.Logger
}

func NewEventPump(queue *redis.EventQueue, sink EventSink, logger *slog.Logger) *EventPump {
	return &EventPump{queue: queue, sink: sink, logger: logger}
}

func (w *EventPump) Run(ctx context.Context) {
	w.logger.Info("eventPump STARTED")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("eventPump STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		ev, err := w.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.Error("event BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		w.sink.Dispatch(ev)
	}
}
