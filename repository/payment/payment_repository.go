package payment

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

// PaymentRepository stores the append-only callback audit log.
type PaymentRepository interface {
	InsertNotificationTx(ctx context.Context, tx *sqlx.Tx, data *model.PaymentNotificationEntity) (uint64, error)
}

func NewPaymentRepository(conn *sqlx.DB) PaymentRepository {
	return &SQL{conn: conn}
}

const insertNotificationQuery = `INSERT INTO payment_notifications (order_id, provider, payload, status, created_at) VALUES (?, ?, ?, ?, NOW())`

func (r *SQL) InsertNotificationTx(ctx context.Context, tx *sqlx.Tx, data *model.PaymentNotificationEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertNotificationQuery, data.OrderID, data.Provider, data.Payload, data.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
