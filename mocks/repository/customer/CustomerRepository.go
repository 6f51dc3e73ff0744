package customermocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
	"github.com/stretchr/testify/mock"
)

// CustomerRepository is a mock type for the CustomerRepository type
type CustomerRepository struct {
	mock.Mock
}

func (_m *CustomerRepository) UpsertTx(ctx context.Context, tx *sqlx.Tx, data *model.CustomerEntity) (uint64, error) {
	ret := _m.Called(ctx, tx, data)
	return ret.Get(0).(uint64), ret.Error(1)
}

func (_m *CustomerRepository) UpsertContact(ctx context.Context, data *model.CustomerEntity) (uint64, error) {
	ret := _m.Called(ctx, data)
	return ret.Get(0).(uint64), ret.Error(1)
}

// NewCustomerRepository creates a new instance of CustomerRepository. It also registers a cleanup function to assert the mocks expectations.
func NewCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CustomerRepository {
	m := &CustomerRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
