package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemEntity) error
	GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetail, error)
	GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderDetail, error)
	GetOrderDetailByPaymentIDTx(ctx context.Context, tx *sqlx.Tx, mPaymentID string) (*model.OrderDetail, error)
	CompleteOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.CompleteOrderTxItem) error
	AttachPaymentID(ctx context.Context, orderID uint64, mPaymentID string) error
	MarkPaidTx(ctx context.Context, tx *sqlx.Tx, req *model.MarkOrderPaidTxItem) error
	ListByCustomerEmail(ctx context.Context, email string) ([]model.OrderSummaryRow, error)
	ListLines(ctx context.Context, orderIDs []uint64) ([]model.OrderLineRow, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery = `INSERT INTO orders (customer_id, customer_type, status, total_price, shipping_address_id, payment_status, created_at)
VALUES (?, ?, ?, ?, ?, FALSE, NOW())`

	insertOrderItemQuery = `INSERT INTO order_items (order_id, product_id, quantity, price) VALUES (?, ?, ?, ?)`

	getOrderDetailBase = `SELECT o.id, o.customer_id, c.email AS customer_email, c.name AS customer_name, o.status, o.total_price, o.payment_status, o.m_payment_id
FROM orders o
JOIN customers c ON c.id = o.customer_id`

	// An id attached by payment initiation is kept.
	completeOrderQuery = `UPDATE orders SET status = ?, payment_provider = ?, m_payment_id = COALESCE(NULLIF(m_payment_id, ''), ?) WHERE id = ?`

	attachPaymentIDQuery = `UPDATE orders SET m_payment_id = ? WHERE id = ?`

	markPaidQuery = `UPDATE orders SET payment_status = TRUE, payment_provider = ?, payment_payload = ?, paid_at = NOW() WHERE id = ?`

	listByEmailQuery = `SELECT o.id, o.status, o.customer_type, o.total_price, o.payment_status, o.created_at
FROM orders o
JOIN customers c ON c.id = o.customer_id
WHERE c.email = ?
ORDER BY o.created_at DESC, o.id DESC`

	listLinesQuery = `SELECT oi.order_id, oi.product_id, p.name AS product_name, oi.quantity, oi.price
FROM order_items oi
JOIN products p ON p.id = oi.product_id
WHERE oi.order_id IN (?)
ORDER BY oi.order_id, oi.id`
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrderQuery, req.CustomerID, req.CustomerType, req.Status, req.TotalPrice, req.ShippingAddressID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemEntity) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery, orderID, it.ProductID, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetail, error) {
	return getOrderDetail(r.conn.QueryRowxContext(ctx, getOrderDetailBase+" WHERE o.id = ?", orderID))
}

func (r *SQL) GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderDetail, error) {
	return getOrderDetail(tx.QueryRowxContext(ctx, getOrderDetailBase+" WHERE o.id = ? FOR UPDATE", orderID))
}

func (r *SQL) GetOrderDetailByPaymentIDTx(ctx context.Context, tx *sqlx.Tx, mPaymentID string) (*model.OrderDetail, error) {
	return getOrderDetail(tx.QueryRowxContext(ctx, getOrderDetailBase+" WHERE o.m_payment_id = ? ORDER BY o.id DESC LIMIT 1 FOR UPDATE", mPaymentID))
}

// getOrderDetail returns nil without error when the row does not exist.
func getOrderDetail(row *sqlx.Row) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	if err := row.StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) CompleteOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.CompleteOrderTxItem) error {
	_, err := tx.ExecContext(ctx, completeOrderQuery, constant.OrderStatusConfirmed, req.PaymentProvider, req.MPaymentID, req.OrderID)
	return err
}

func (r *SQL) AttachPaymentID(ctx context.Context, orderID uint64, mPaymentID string) error {
	_, err := r.conn.ExecContext(ctx, attachPaymentIDQuery, mPaymentID, orderID)
	return err
}

func (r *SQL) MarkPaidTx(ctx context.Context, tx *sqlx.Tx, req *model.MarkOrderPaidTxItem) error {
	_, err := tx.ExecContext(ctx, markPaidQuery, req.Provider, req.Payload, req.OrderID)
	return err
}

func (r *SQL) ListByCustomerEmail(ctx context.Context, email string) ([]model.OrderSummaryRow, error) {
	orders := make([]model.OrderSummaryRow, 0)
	if err := r.conn.SelectContext(ctx, &orders, listByEmailQuery, email); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *SQL) ListLines(ctx context.Context, orderIDs []uint64) ([]model.OrderLineRow, error) {
	lines := make([]model.OrderLineRow, 0)
	if len(orderIDs) == 0 {
		return lines, nil
	}
	query, args, err := sqlx.In(listLinesQuery, orderIDs)
	if err != nil {
		return nil, err
	}
	if err := r.conn.SelectContext(ctx, &lines, r.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return lines, nil
}
