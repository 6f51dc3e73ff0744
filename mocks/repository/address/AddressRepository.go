package addressmocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
	"github.com/stretchr/testify/mock"
)

// AddressRepository is a mock type for the AddressRepository type
type AddressRepository struct {
	mock.Mock
}

func (_m *AddressRepository) ListProvinces(ctx context.Context) ([]model.Province, error) {
	ret := _m.Called(ctx)

	var r0 []model.Province
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Province)
	}
	return r0, ret.Error(1)
}

func (_m *AddressRepository) ProvinceExists(ctx context.Context, provinceID uint64) (bool, error) {
	ret := _m.Called(ctx, provinceID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *AddressRepository) ProvinceExistsTx(ctx context.Context, tx *sqlx.Tx, provinceID uint64) (bool, error) {
	ret := _m.Called(ctx, tx, provinceID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *AddressRepository) Insert(ctx context.Context, data *model.ShippingAddressEntity) (uint64, error) {
	ret := _m.Called(ctx, data)
	return ret.Get(0).(uint64), ret.Error(1)
}

func (_m *AddressRepository) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.ShippingAddressEntity) (uint64, error) {
	ret := _m.Called(ctx, tx, data)
	return ret.Get(0).(uint64), ret.Error(1)
}

// NewAddressRepository creates a new instance of AddressRepository. It also registers a cleanup function to assert the mocks expectations.
func NewAddressRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AddressRepository {
	m := &AddressRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
