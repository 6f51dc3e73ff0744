package address

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AddressRepository interface {
	ListProvinces(ctx context.Context) ([]model.Province, error)
	ProvinceExists(ctx context.Context, provinceID uint64) (bool, error)
	ProvinceExistsTx(ctx context.Context, tx *sqlx.Tx, provinceID uint64) (bool, error)
	Insert(ctx context.Context, data *model.ShippingAddressEntity) (uint64, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.ShippingAddressEntity) (uint64, error)
}

func NewAddressRepository(conn *sqlx.DB) AddressRepository {
	return &SQL{conn: conn}
}

const (
	listProvincesQuery  = `SELECT id, name FROM provinces ORDER BY name`
	provinceExistsQuery = `SELECT EXISTS(SELECT 1 FROM provinces WHERE id = ?)`
	insertAddressQuery  = `INSERT INTO shipping_addresses (province_id, city, street_address, postal_code) VALUES (?, ?, ?, ?)`
)

func (r *SQL) ListProvinces(ctx context.Context) ([]model.Province, error) {
	provinces := make([]model.Province, 0)
	if err := r.conn.SelectContext(ctx, &provinces, listProvincesQuery); err != nil {
		return nil, err
	}
	return provinces, nil
}

func (r *SQL) ProvinceExists(ctx context.Context, provinceID uint64) (bool, error) {
	var exists bool
	if err := r.conn.GetContext(ctx, &exists, provinceExistsQuery, provinceID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *SQL) ProvinceExistsTx(ctx context.Context, tx *sqlx.Tx, provinceID uint64) (bool, error) {
	var exists bool
	if err := tx.GetContext(ctx, &exists, provinceExistsQuery, provinceID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *SQL) Insert(ctx context.Context, data *model.ShippingAddressEntity) (uint64, error) {
	return insertAddress(ctx, r.conn, data)
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.ShippingAddressEntity) (uint64, error) {
	return insertAddress(ctx, tx, data)
}

func insertAddress(ctx context.Context, exec sqlx.ExecerContext, data *model.ShippingAddressEntity) (uint64, error) {
	res, err := exec.ExecContext(ctx, insertAddressQuery, data.ProvinceID, data.City, data.Street, data.PostalCode)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
