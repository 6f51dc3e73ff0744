package customer

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CustomerRepository interface {
	UpsertTx(ctx context.Context, tx *sqlx.Tx, data *model.CustomerEntity) (uint64, error)
	UpsertContact(ctx context.Context, data *model.CustomerEntity) (uint64, error)
}

func NewCustomerRepository(conn *sqlx.DB) CustomerRepository {
	return &SQL{conn: conn}
}

const (
	// Empty incoming name/phone keep the stored values.
	upsertCustomerQuery = `INSERT INTO customers (name, email, phone) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
	id = LAST_INSERT_ID(id),
	name = IF(VALUES(name) = '', name, VALUES(name)),
	phone = IF(VALUES(phone) = '', phone, VALUES(phone))`

	upsertContactQuery = `INSERT INTO customers (name, email, phone, message) VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
	id = LAST_INSERT_ID(id),
	name = VALUES(name),
	phone = VALUES(phone),
	message = VALUES(message)`
)

func (r *SQL) UpsertTx(ctx context.Context, tx *sqlx.Tx, data *model.CustomerEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, upsertCustomerQuery, data.Name, data.Email, data.Phone)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) UpsertContact(ctx context.Context, data *model.CustomerEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, upsertContactQuery, data.Name, data.Email, data.Phone, data.Message)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
