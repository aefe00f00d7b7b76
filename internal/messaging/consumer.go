package messaging

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"
)

// ErrPermanent marks a handler failure that redelivery cannot fix. Such
// messages are rejected without requeue.
var ErrPermanent = errors.New("permanent failure")

// Handler processes one message body. A nil return acks the message.
type Handler func(ctx context.Context, body []byte) error

// Consume delivers messages from queue to handler until ctx is done, running
// up to the configured prefetch count concurrently.
func (r *RabbitMQ) Consume(ctx context.Context, queue string, handler Handler) error {
	ch, err := r.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consumer channel: %w", err)
	}
	defer ch.Close()

	prefetch := max(r.prefetch, 1)
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", queue, err)
	}

	logger := r.logger.With("queue", queue)
	logger.Info("consuming")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetch)
	defer func() { _ = g.Wait() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("consume %s: delivery channel closed", queue)
			}
			g.Go(func() error {
				err := handler(gctx, d.Body)
				if settleErr := settle(d, err); settleErr != nil {
					logger.Error("failed to settle message", "message_id", d.MessageId, "error", settleErr)
				}
				if err != nil {
					logger.Warn("message handling failed",
						"message_id", d.MessageId,
						"redelivered", d.Redelivered,
						"error", err,
					)
				}
				return nil
			})
		}
	}
}

// settle acks on success, rejects permanent failures and requeues the rest.
func settle(d amqp.Delivery, err error) error {
	switch {
	case err == nil:
		return d.Ack(false)
	case errors.Is(err, ErrPermanent):
		return d.Nack(false, false)
	default:
		return d.Nack(false, true)
	}
}
