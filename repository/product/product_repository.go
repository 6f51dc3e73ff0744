package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error)
	ListImages(ctx context.Context, id uint64) ([]string, error)
	UpdateRating(ctx context.Context, id uint64, rating float64) (bool, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsBase = `SELECT p.id, COALESCE(p.product_code, '') AS product_code, p.name, COALESCE(p.type, '') AS type,
COALESCE(p.description, '') AS description, p.price,
COALESCE((SELECT pi.image_url FROM product_images pi WHERE pi.product_id = p.id AND pi.is_primary = TRUE ORDER BY pi.id LIMIT 1), '') AS primary_image
FROM products p`

	countProductsQuery = `SELECT COUNT(*) FROM products`

	getProductDetail = `SELECT p.id, COALESCE(p.product_code, '') AS product_code, p.name, COALESCE(p.type, '') AS type,
COALESCE(p.description, '') AS description, p.price, p.rating, COALESCE(SUM(i.quantity), 0) AS stock
FROM products p
LEFT JOIN inventory i ON i.product_id = p.id
WHERE p.id = ?
GROUP BY p.id, p.product_code, p.name, p.type, p.description, p.price, p.rating`

	listImagesQuery = `SELECT image_url FROM product_images WHERE product_id = ? ORDER BY is_primary DESC, id`

	updateRatingQuery = `UPDATE products SET rating = ? WHERE id = ?`

	productExistsQuery = `SELECT EXISTS(SELECT 1 FROM products WHERE id = ?)`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listProductsBase + " ORDER BY p.name, p.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// GetByID returns nil when the product does not exist.
func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	if err := s.conn.QueryRowxContext(ctx, getProductDetail, id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) ListImages(ctx context.Context, id uint64) ([]string, error) {
	images := make([]string, 0)
	if err := s.conn.SelectContext(ctx, &images, listImagesQuery, id); err != nil {
		return nil, err
	}
	return images, nil
}

// UpdateRating reports false when no product has the given id.
func (s *SQL) UpdateRating(ctx context.Context, id uint64, rating float64) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, productExistsQuery, id); err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if _, err := s.conn.ExecContext(ctx, updateRatingQuery, rating, id); err != nil {
		return false, err
	}
	return true, nil
}
