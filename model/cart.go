package model

import "github.com/shopspring/decimal"

type AddCartItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1"`
	GuestID   string `json:"guest_id,omitempty"`
}

type UpdateCartItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=0"`
	GuestID   string `json:"guest_id,omitempty"`
}

type CartItemRow struct {
	CartItemID  uint64          `db:"cart_item_id"`
	ProductID   uint64          `db:"product_id"`
	ProductName string          `db:"product_name"`
	ProductCode string          `db:"product_code"`
	Quantity    int             `db:"quantity"`
	Price       decimal.Decimal `db:"price"`
}

type CartItem struct {
	CartItemID  uint64  `json:"cart_item_id"`
	ProductID   uint64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	ProductCode string  `json:"product_code"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type CartResponse struct {
	OwnerType IdentityType `json:"owner_type"`
	GuestID   string       `json:"guest_id,omitempty"`
	Items     []CartItem   `json:"items"`
}

type CartMutationResponse struct {
	OwnerType IdentityType `json:"owner_type"`
	OwnerID   string       `json:"owner_id"`
	Message   string       `json:"message"`
}

type MergeCartRequest struct {
	GuestID string `json:"guest_id"`
}

type MergeCartResponse struct {
	Merged  bool   `json:"merged"`
	Message string `json:"message"`
}

type GuestToAuthResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}
