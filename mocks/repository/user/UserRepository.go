package usermocks

import (
	"context"

	"github.com/muhammadheryan/storefront/model"
	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock type for the UserRepository type
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error) {
	ret := _m.Called(ctx, req)

	var r0 *model.UserEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.UserEntity)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	ret := _m.Called(ctx, filter)

	var r0 *model.UserEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.UserEntity)
	}
	return r0, ret.Error(1)
}

// NewUserRepository creates a new instance of UserRepository. It also registers a cleanup function to assert the mocks expectations.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
