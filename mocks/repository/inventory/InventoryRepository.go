package inventorymocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
	"github.com/stretchr/testify/mock"
)

// InventoryRepository is a mock type for the InventoryRepository type
type InventoryRepository struct {
	mock.Mock
}

func (_m *InventoryRepository) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, items []model.OrderItemEntity) error {
	ret := _m.Called(ctx, tx, items)
	return ret.Error(0)
}

func (_m *InventoryRepository) GetStock(ctx context.Context, productID uint64) (int64, error) {
	ret := _m.Called(ctx, productID)
	return ret.Get(0).(int64), ret.Error(1)
}

// NewInventoryRepository creates a new instance of InventoryRepository. It also registers a cleanup function to assert the mocks expectations.
func NewInventoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *InventoryRepository {
	m := &InventoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
