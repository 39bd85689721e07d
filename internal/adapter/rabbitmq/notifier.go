package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

const notificationsExchange = "storefront_notifications"

// envelope wraps events on the wire so an instance can skip its own
// fanout deliveries.
type envelope struct {
	Source string           `json:"source"`
	Event  interfaces.Event `json:"event"`
}

// Notifier decorates an in-process event bus with a RabbitMQ fanout
// exchange, so several running storefront instances see each other's
// settings and order changes. Local publishes go to both the inner bus
// and the exchange; deliveries from other instances are replayed onto
// the inner bus.
type Notifier struct {
	conn     Connection
	inner    interfaces.EventBus
	instance string
	logger   logger.Logger
}

func NewNotifier(conn Connection, inner interfaces.EventBus, lgr logger.Logger) *Notifier {
	return &Notifier{conn: conn, inner: inner, instance: uuid.NewString(), logger: lgr}
}

var _ interfaces.EventBus = (*Notifier)(nil)

func (n *Notifier) Publish(ctx context.Context, event interfaces.Event) {
	n.inner.Publish(ctx, event)

	if err := n.publishFanout(event); err != nil {
		n.logger.Error("notification_publish_failed", "Failed to publish notification", "",
			map[string]interface{}{"event_type": event.Type}, err)
	}
}

func (n *Notifier) Subscribe() (<-chan interfaces.Event, func()) {
	return n.inner.Subscribe()
}

func (n *Notifier) publishFanout(event interfaces.Event) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(notificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(envelope{Source: n.instance, Event: event})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = ch.Publish(notificationsExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Consume replays fanout deliveries from other instances onto the
// inner bus until ctx is cancelled.
func (n *Notifier) Consume(ctx context.Context) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(notificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	queue, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(queue.Name, "", notificationsExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	deliveries, err := ch.Consume(queue.Name, "", true, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			var env envelope
			if err := json.Unmarshal(d.Body, &env); err != nil {
				n.logger.Error("notification_decode_failed", "Failed to decode notification", "", nil, err)
				continue
			}
			if env.Source == n.instance {
				continue
			}
			n.inner.Publish(ctx, env.Event)
		}
	}
}
