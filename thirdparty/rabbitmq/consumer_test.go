package rabbitmq

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/storefront/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

type fakeAcknowledger struct {
	acked  []uint64
	nacked []uint64
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = append(f.acked, tag)
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = append(f.nacked, tag)
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	f.nacked = append(f.nacked, tag)
	return nil
}

func TestConsumer_Handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		handlerErr error
		wantCalled bool
	}{
		{
			name:       "delivered",
			body:       `{"kind":"contact","to":"a@example.com","subject":"Hi","html":"<p>x</p>"}`,
			wantCalled: true,
		},
		{
			name:       "handler failure is acked and dropped",
			body:       `{"kind":"order_customer","to":"a@example.com"}`,
			handlerErr: errors.New("smtp down"),
			wantCalled: true,
		},
		{
			name:       "malformed body is acked without delivery",
			body:       `{not json`,
			wantCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *model.NotificationMessage
			c := &Consumer{handler: func(ctx context.Context, msg model.NotificationMessage) error {
				got = &msg
				return tt.handlerErr
			}}
			ack := &fakeAcknowledger{}

			c.handle(context.Background(), amqp091.Delivery{Acknowledger: ack, DeliveryTag: 7, Body: []byte(tt.body)})

			assert.Equal(t, []uint64{7}, ack.acked)
			assert.Empty(t, ack.nacked)
			assert.Equal(t, tt.wantCalled, got != nil)
			if tt.wantCalled {
				assert.Equal(t, "a@example.com", got.To)
			}
		})
	}
}

func TestNopPublisher(t *testing.T) {
	var p NotificationPublisher = NopPublisher{}
	err := p.Publish(context.Background(), model.NotificationMessage{To: "a@example.com"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
