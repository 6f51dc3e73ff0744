package cart

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CartRepository interface {
	GetCartIDTx(ctx context.Context, tx *sqlx.Tx, ownerID string) (uint64, bool, error)
	EnsureCartTx(ctx context.Context, tx *sqlx.Tx, ownerID string) (uint64, error)
	AddItemTx(ctx context.Context, tx *sqlx.Tx, cartID, productID uint64, quantity int) error
	SetItemQuantityTx(ctx context.Context, tx *sqlx.Tx, cartID, productID uint64, quantity int) error
	DeleteItemTx(ctx context.Context, tx *sqlx.Tx, cartID, productID uint64) error
	ListItems(ctx context.Context, ownerID string) ([]model.CartItemRow, error)
	ListItemsTx(ctx context.Context, tx *sqlx.Tx, ownerID string) ([]model.CartItemRow, error)
	ClearItemsTx(ctx context.Context, tx *sqlx.Tx, ownerID string) error
	DeleteCartTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

const (
	getCartIDQuery = `SELECT id FROM cart WHERE owner_id = ?`

	// LAST_INSERT_ID(id) makes the existing row id visible through LastInsertId.
	ensureCartQuery = `INSERT INTO cart (owner_id) VALUES (?) ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`

	addItemQuery = `INSERT INTO cart_items (cart_id, product_id, quantity) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`

	setItemQuery = `INSERT INTO cart_items (cart_id, product_id, quantity) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE quantity = VALUES(quantity)`

	deleteItemQuery = `DELETE FROM cart_items WHERE cart_id = ? AND product_id = ?`

	listItemsQuery = `SELECT ci.id AS cart_item_id, p.id AS product_id, p.name AS product_name,
COALESCE(p.product_code, '') AS product_code, ci.quantity, COALESCE(p.price, 0) AS price
FROM cart c
JOIN cart_items ci ON c.id = ci.cart_id
JOIN products p ON ci.product_id = p.id
WHERE c.owner_id = ?
ORDER BY ci.id`

	clearItemsQuery = `DELETE ci FROM cart_items ci JOIN cart c ON c.id = ci.cart_id WHERE c.owner_id = ?`

	deleteCartItemsQuery = `DELETE FROM cart_items WHERE cart_id = ?`
	deleteCartQuery      = `DELETE FROM cart WHERE id = ?`
)

func (r *SQL) GetCartIDTx(ctx context.Context, tx *sqlx.Tx, ownerID string) (uint64, bool, error) {
	var id uint64
	if err := tx.GetContext(ctx, &id, getCartIDQuery, ownerID); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

func (r *SQL) EnsureCartTx(ctx context.Context, tx *sqlx.Tx, ownerID string) (uint64, error) {
	res, err := tx.ExecContext(ctx, ensureCartQuery, ownerID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) AddItemTx(ctx context.Context, tx *sqlx.Tx, cartID, productID uint64, quantity int) error {
	_, err := tx.ExecContext(ctx, addItemQuery, cartID, productID, quantity)
	return err
}

func (r *SQL) SetItemQuantityTx(ctx context.Context, tx *sqlx.Tx, cartID, productID uint64, quantity int) error {
	_, err := tx.ExecContext(ctx, setItemQuery, cartID, productID, quantity)
	return err
}

func (r *SQL) DeleteItemTx(ctx context.Context, tx *sqlx.Tx, cartID, productID uint64) error {
	_, err := tx.ExecContext(ctx, deleteItemQuery, cartID, productID)
	return err
}

func (r *SQL) ListItems(ctx context.Context, ownerID string) ([]model.CartItemRow, error) {
	items := make([]model.CartItemRow, 0)
	if err := r.conn.SelectContext(ctx, &items, listItemsQuery, ownerID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) ListItemsTx(ctx context.Context, tx *sqlx.Tx, ownerID string) ([]model.CartItemRow, error) {
	items := make([]model.CartItemRow, 0)
	if err := tx.SelectContext(ctx, &items, listItemsQuery, ownerID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) ClearItemsTx(ctx context.Context, tx *sqlx.Tx, ownerID string) error {
	_, err := tx.ExecContext(ctx, clearItemsQuery, ownerID)
	return err
}

func (r *SQL) DeleteCartTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	if _, err := tx.ExecContext(ctx, deleteCartItemsQuery, cartID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, deleteCartQuery, cartID)
	return err
}
