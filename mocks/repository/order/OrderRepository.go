package ordermocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
	"github.com/stretchr/testify/mock"
)

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	ret := _m.Called(ctx, tx, req)
	return ret.Get(0).(uint64), ret.Error(1)
}

func (_m *OrderRepository) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemEntity) error {
	ret := _m.Called(ctx, tx, orderID, items)
	return ret.Error(0)
}

func (_m *OrderRepository) GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetail, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *model.OrderDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.OrderDetail)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderDetail, error) {
	ret := _m.Called(ctx, tx, orderID)

	var r0 *model.OrderDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.OrderDetail)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) GetOrderDetailByPaymentIDTx(ctx context.Context, tx *sqlx.Tx, mPaymentID string) (*model.OrderDetail, error) {
	ret := _m.Called(ctx, tx, mPaymentID)

	var r0 *model.OrderDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.OrderDetail)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) CompleteOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.CompleteOrderTxItem) error {
	ret := _m.Called(ctx, tx, req)
	return ret.Error(0)
}

func (_m *OrderRepository) AttachPaymentID(ctx context.Context, orderID uint64, mPaymentID string) error {
	ret := _m.Called(ctx, orderID, mPaymentID)
	return ret.Error(0)
}

func (_m *OrderRepository) MarkPaidTx(ctx context.Context, tx *sqlx.Tx, req *model.MarkOrderPaidTxItem) error {
	ret := _m.Called(ctx, tx, req)
	return ret.Error(0)
}

func (_m *OrderRepository) ListByCustomerEmail(ctx context.Context, email string) ([]model.OrderSummaryRow, error) {
	ret := _m.Called(ctx, email)

	var r0 []model.OrderSummaryRow
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.OrderSummaryRow)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListLines(ctx context.Context, orderIDs []uint64) ([]model.OrderLineRow, error) {
	ret := _m.Called(ctx, orderIDs)

	var r0 []model.OrderLineRow
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.OrderLineRow)
	}
	return r0, ret.Error(1)
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a cleanup function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
