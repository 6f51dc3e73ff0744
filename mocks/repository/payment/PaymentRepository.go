package paymentmocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
	"github.com/stretchr/testify/mock"
)

// PaymentRepository is a mock type for the PaymentRepository type
type PaymentRepository struct {
	mock.Mock
}

func (_m *PaymentRepository) InsertNotificationTx(ctx context.Context, tx *sqlx.Tx, data *model.PaymentNotificationEntity) (uint64, error) {
	ret := _m.Called(ctx, tx, data)
	return ret.Get(0).(uint64), ret.Error(1)
}

// NewPaymentRepository creates a new instance of PaymentRepository. It also registers a cleanup function to assert the mocks expectations.
func NewPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentRepository {
	m := &PaymentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
