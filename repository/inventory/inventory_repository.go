package inventory

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type InventoryRepository interface {
	DecrementStockTx(ctx context.Context, tx *sqlx.Tx, items []model.OrderItemEntity) error
	GetStock(ctx context.Context, productID uint64) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	// Products without an inventory row are left untouched.
	decrementStockQuery = `UPDATE inventory SET quantity = quantity - ? WHERE product_id = ?`
	getStockQuery       = `SELECT COALESCE(SUM(quantity), 0) FROM inventory WHERE product_id = ?`
)

func (r *SQL) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, items []model.OrderItemEntity) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, decrementStockQuery, it.Quantity, it.ProductID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetStock(ctx context.Context, productID uint64) (int64, error) {
	var total int64
	if err := r.conn.GetContext(ctx, &total, getStockQuery, productID); err != nil {
		return 0, err
	}
	return total, nil
}
