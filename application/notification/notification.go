// Package notification builds the outbound emails queued by checkout and
// the contact form.
package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/go-faster/errors"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EmailFailedSuffix is appended to a success message when a notification could not be queued.
const EmailFailedSuffix = " but confirmation email could not be sent"

type OrderEvent string

const (
	OrderPlaced    OrderEvent = "placed"
	OrderConfirmed OrderEvent = "confirmed"
)

type Order struct {
	ID            uint64
	Total         decimal.Decimal
	CustomerName  string
	CustomerEmail string
	CustomerType  string
	Event         OrderEvent
}

// OrderMessages returns the customer email and, when an operator address is set, the operator email.
func OrderMessages(o Order, operatorAddress string) []model.NotificationMessage {
	msgs := make([]model.NotificationMessage, 0, 2)
	if o.CustomerEmail != "" {
		msgs = append(msgs, model.NotificationMessage{
			Kind:    model.NotificationOrderCustomer,
			To:      o.CustomerEmail,
			Subject: fmt.Sprintf("Your order #%d has been %s", o.ID, o.Event),
			HTML: fmt.Sprintf("<p>Hi %s,</p><p>Thank you for shopping with us. Your order <strong>#%d</strong> has been %s.</p><p>Total: R%s</p>",
				html.EscapeString(o.CustomerName), o.ID, o.Event, o.Total.StringFixed(2)),
		})
	}
	if operatorAddress != "" {
		msgs = append(msgs, model.NotificationMessage{
			Kind:    model.NotificationOrderOperator,
			To:      operatorAddress,
			Subject: fmt.Sprintf("Order #%d %s", o.ID, o.Event),
			HTML: fmt.Sprintf("<p>Order <strong>#%d</strong> was %s.</p><ul><li>Customer: %s &lt;%s&gt;</li><li>Channel: %s</li><li>Total: R%s</li></ul>",
				o.ID, o.Event, html.EscapeString(o.CustomerName), html.EscapeString(o.CustomerEmail),
				html.EscapeString(o.CustomerType), o.Total.StringFixed(2)),
		})
	}
	return msgs
}

// ContactMessages acknowledges a contact form submission and forwards it to the operator.
func ContactMessages(c *model.ContactRequest, operatorAddress string) []model.NotificationMessage {
	msgs := []model.NotificationMessage{{
		Kind:    model.NotificationContact,
		To:      c.Email,
		Subject: "We received your message",
		HTML: fmt.Sprintf("<p>Hi %s,</p><p>Thanks for reaching out. We will get back to you shortly.</p>",
			html.EscapeString(c.Name)),
	}}
	if operatorAddress != "" {
		msgs = append(msgs, model.NotificationMessage{
			Kind:    model.NotificationContact,
			To:      operatorAddress,
			Subject: "New contact form submission from " + strings.Join(strings.Fields(c.Name), " "),
			HTML: fmt.Sprintf("<p>%s &lt;%s&gt; (%s) wrote:</p><p>%s</p>",
				html.EscapeString(c.Name), html.EscapeString(c.Email), html.EscapeString(c.Phone),
				strings.ReplaceAll(html.EscapeString(c.Message), "\n", "<br>")),
		})
	}
	return msgs
}

// Send queues every message and reports the first failure. It never stops early.
func Send(ctx context.Context, publisher rabbitmq.NotificationPublisher, msgs []model.NotificationMessage) error {
	if publisher == nil {
		return rabbitmq.ErrUnavailable
	}
	var first error
	for _, msg := range msgs {
		if err := publisher.Publish(ctx, msg); err != nil {
			logger.Warn("[notification.Send] publish",
				zap.String("kind", string(msg.Kind)),
				zap.String("to", msg.To),
				zap.String("error", err.Error()))
			if first == nil {
				first = errors.Wrap(err, "publish notification")
			}
		}
	}
	return first
}
