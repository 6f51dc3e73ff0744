package model

import (
	"database/sql"
	"time"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/shopspring/decimal"
)

type InsertOrderTxItem struct {
	CustomerID        uint64
	CustomerType      constant.CustomerType
	Status            constant.OrderStatus
	TotalPrice        decimal.Decimal
	ShippingAddressID uint64
}

type OrderItemEntity struct {
	ProductID uint64          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

type OrderDetail struct {
	ID            uint64               `db:"id"`
	CustomerID    uint64               `db:"customer_id"`
	CustomerEmail string               `db:"customer_email"`
	CustomerName  string               `db:"customer_name"`
	Status        constant.OrderStatus `db:"status"`
	TotalPrice    decimal.Decimal      `db:"total_price"`
	PaymentStatus bool                 `db:"payment_status"`
	MPaymentID    sql.NullString       `db:"m_payment_id"`
}

type CompleteOrderTxItem struct {
	OrderID         uint64
	PaymentProvider string
	MPaymentID      string
}

type OrderSummaryRow struct {
	ID            uint64          `db:"id"`
	Status        string          `db:"status"`
	CustomerType  string          `db:"customer_type"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	PaymentStatus bool            `db:"payment_status"`
	CreatedAt     time.Time       `db:"created_at"`
}

type OrderLineRow struct {
	OrderID     uint64          `db:"order_id"`
	ProductID   uint64          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	Price       decimal.Decimal `db:"price"`
}

type OrderLine struct {
	ProductID   uint64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderSummary struct {
	ID            uint64      `json:"id"`
	Status        string      `json:"status"`
	CustomerType  string      `json:"customer_type"`
	TotalPrice    float64     `json:"total_price"`
	PaymentStatus bool        `json:"payment_status"`
	CreatedAt     time.Time   `json:"created_at"`
	Items         []OrderLine `json:"items"`
}

type OrderListResponse struct {
	Orders []OrderSummary `json:"orders"`
}
