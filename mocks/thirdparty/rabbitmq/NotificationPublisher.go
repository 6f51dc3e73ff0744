package rabbitmqmocks

import (
	"context"

	"github.com/muhammadheryan/storefront/model"
	"github.com/stretchr/testify/mock"
)

// NotificationPublisher is a mock type for the NotificationPublisher type
type NotificationPublisher struct {
	mock.Mock
}

func (_m *NotificationPublisher) Publish(ctx context.Context, msg model.NotificationMessage) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}

// NewNotificationPublisher creates a new instance of NotificationPublisher. It also registers a cleanup function to assert the mocks expectations.
func NewNotificationPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationPublisher {
	m := &NotificationPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
