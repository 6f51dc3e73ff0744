package cartmocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
	"github.com/stretchr/testify/mock"
)

// CartRepository is a mock type for the CartRepository type
type CartRepository struct {
	mock.Mock
}

func (_m *CartRepository) GetCartIDTx(ctx context.Context, tx *sqlx.Tx, ownerID string) (uint64, bool, error) {
	ret := _m.Called(ctx, tx, ownerID)
	return ret.Get(0).(uint64), ret.Bool(1), ret.Error(2)
}

func (_m *CartRepository) EnsureCartTx(ctx context.Context, tx *sqlx.Tx, ownerID string) (uint64, error) {
	ret := _m.Called(ctx, tx, ownerID)
	return ret.Get(0).(uint64), ret.Error(1)
}

func (_m *CartRepository) AddItemTx(ctx context.Context, tx *sqlx.Tx, cartID, productID uint64, quantity int) error {
	ret := _m.Called(ctx, tx, cartID, productID, quantity)
	return ret.Error(0)
}

func (_m *CartRepository) SetItemQuantityTx(ctx context.Context, tx *sqlx.Tx, cartID, productID uint64, quantity int) error {
	ret := _m.Called(ctx, tx, cartID, productID, quantity)
	return ret.Error(0)
}

func (_m *CartRepository) DeleteItemTx(ctx context.Context, tx *sqlx.Tx, cartID, productID uint64) error {
	ret := _m.Called(ctx, tx, cartID, productID)
	return ret.Error(0)
}

func (_m *CartRepository) ListItems(ctx context.Context, ownerID string) ([]model.CartItemRow, error) {
	ret := _m.Called(ctx, ownerID)

	var r0 []model.CartItemRow
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.CartItemRow)
	}
	return r0, ret.Error(1)
}

func (_m *CartRepository) ListItemsTx(ctx context.Context, tx *sqlx.Tx, ownerID string) ([]model.CartItemRow, error) {
	ret := _m.Called(ctx, tx, ownerID)

	var r0 []model.CartItemRow
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.CartItemRow)
	}
	return r0, ret.Error(1)
}

func (_m *CartRepository) ClearItemsTx(ctx context.Context, tx *sqlx.Tx, ownerID string) error {
	ret := _m.Called(ctx, tx, ownerID)
	return ret.Error(0)
}

func (_m *CartRepository) DeleteCartTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	ret := _m.Called(ctx, tx, cartID)
	return ret.Error(0)
}

// NewCartRepository creates a new instance of CartRepository. It also registers a cleanup function to assert the mocks expectations.
func NewCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
