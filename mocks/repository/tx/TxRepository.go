package txmocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// TxRepository is a mock type for the TxRepository type
type TxRepository struct {
	mock.Mock
}

func (_m *TxRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	ret := _m.Called(ctx)

	var r0 *sqlx.Tx
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sqlx.Tx)
	}
	return r0, ret.Error(1)
}

func (_m *TxRepository) CommitTx(tx *sqlx.Tx) error {
	ret := _m.Called(tx)
	return ret.Error(0)
}

func (_m *TxRepository) RollbackTx(tx *sqlx.Tx) error {
	ret := _m.Called(tx)
	return ret.Error(0)
}

func (_m *TxRepository) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// NewTxRepository creates a new instance of TxRepository. It also registers a cleanup function to assert the mocks expectations.
func NewTxRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *TxRepository {
	m := &TxRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
