package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-faster/errors"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/model"
	"github.com/rabbitmq/amqp091-go"
)

// ErrUnavailable is returned by NopPublisher.
var ErrUnavailable = errors.New("notification queue unavailable")

// NotificationPublisher queues outbound emails for the notifier worker.
type NotificationPublisher interface {
	Publish(ctx context.Context, msg model.NotificationMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

func NewPublisher(cfg config.RabbitMQConfig) (*Publisher, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) Publish(ctx context.Context, msg model.NotificationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "marshal notification")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx,
		NotificationExchange,   // exchange
		NotificationRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return errors.Wrap(err, "publish notification")
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// NopPublisher stands in when the broker could not be reached at startup.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.NotificationMessage) error {
	return ErrUnavailable
}
