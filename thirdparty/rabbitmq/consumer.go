package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// HandlerFunc delivers one notification. Returned errors are logged and the
// message is dropped; retrying is the handler's job.
type HandlerFunc func(ctx context.Context, msg model.NotificationMessage) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler HandlerFunc
}

func NewConsumer(cfg config.RabbitMQConfig, handler HandlerFunc) (*Consumer, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}
	return &Consumer{conn: conn, channel: channel, handler: handler}, nil
}

// Start consumes until ctx is cancelled or the channel closes. It blocks.
func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return errors.Wrap(err, "set qos")
	}

	msgs, err := c.channel.Consume(
		NotificationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return errors.Wrap(err, "consume")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.handle(ctx, msg)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var notification model.NotificationMessage
	if err := json.Unmarshal(msg.Body, &notification); err != nil {
		logger.Error("[Consumer] failed to unmarshal notification", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.handler(ctx, notification); err != nil {
		logger.Error("[Consumer] notification dropped",
			zap.String("kind", string(notification.Kind)),
			zap.String("to", notification.To),
			zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] notification sent",
		zap.String("kind", string(notification.Kind)),
		zap.String("to", notification.To))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
