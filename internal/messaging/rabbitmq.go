package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	amqp "github.com/rabbitmq/amqp091-go"

	"media_core/internal/config"
	"media_core/internal/domain"
)

// PartitionKeyHeader carries the id whose updates must stay ordered.
const PartitionKeyHeader = "partition_key"

type RabbitMQ struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	prefetch int
	content  config.RouteConfig
	graph    config.RouteConfig
	equiv    config.RouteConfig
	logger   *slog.Logger
}

// NewRabbitMQ connects and declares the exchange with one durable queue per
// message kind.
func NewRabbitMQ(cfg config.RabbitMQConfig, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	for _, route := range []config.RouteConfig{cfg.Content, cfg.Graph, cfg.Equivalent} {
		if err := declareRoute(ch, cfg.Exchange, route); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}

	logger = logger.With("component", "rabbitmq")
	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"content_queue", cfg.Content.QueueName,
		"graph_queue", cfg.Graph.QueueName,
		"equivalent_queue", cfg.Equivalent.QueueName,
	)

	return &RabbitMQ{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		prefetch: cfg.Prefetch,
		content:  cfg.Content,
		graph:    cfg.Graph,
		equiv:    cfg.Equivalent,
		logger:   logger,
	}, nil
}

func declareRoute(ch *amqp.Channel, exchange string, route config.RouteConfig) error {
	q, err := ch.QueueDeclare(
		route.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", route.QueueName, err)
	}
	if err := ch.QueueBind(q.Name, route.RoutingKey, exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", route.QueueName, err)
	}
	return nil
}

func (r *RabbitMQ) SendResourceUpdated(ctx context.Context, msg domain.ResourceUpdatedMessage) error {
	return r.publish(ctx, r.content.RoutingKey, msg.MessageID, msg.PartitionKey, msg)
}

func (r *RabbitMQ) SendGraphUpdate(ctx context.Context, msg domain.EquivalenceGraphUpdateMessage) error {
	return r.publish(ctx, r.graph.RoutingKey, msg.MessageID, msg.PartitionKey(), msg)
}

func (r *RabbitMQ) SendEquivalentContentUpdated(ctx context.Context, msg domain.EquivalentContentUpdatedMessage) error {
	return r.publish(ctx, r.equiv.RoutingKey, msg.MessageID, msg.SetID, msg)
}

func (r *RabbitMQ) publish(ctx context.Context, routingKey, messageID string, partitionKey domain.ID, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    messageID,
			Headers:      amqp.Table{PartitionKeyHeader: strconv.FormatInt(int64(partitionKey), 10)},
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published message",
		"routing_key", routingKey,
		"message_id", messageID,
		"partition_key", partitionKey,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
