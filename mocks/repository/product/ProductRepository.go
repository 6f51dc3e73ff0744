package productmocks

import (
	"context"

	"github.com/muhammadheryan/storefront/model"
	"github.com/stretchr/testify/mock"
)

// ProductRepository is a mock type for the ProductRepository type
type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error) {
	ret := _m.Called(ctx, page, perPage)

	var r0 []model.ProductListItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.ProductListItem)
	}
	return r0, ret.Get(1).(int64), ret.Error(2)
}

func (_m *ProductRepository) GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	ret := _m.Called(ctx, id)

	var r0 *model.ProductDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ProductDetail)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) ListImages(ctx context.Context, id uint64) ([]string, error) {
	ret := _m.Called(ctx, id)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) UpdateRating(ctx context.Context, id uint64, rating float64) (bool, error) {
	ret := _m.Called(ctx, id, rating)
	return ret.Bool(0), ret.Error(1)
}

// NewProductRepository creates a new instance of ProductRepository. It also registers a cleanup function to assert the mocks expectations.
func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
