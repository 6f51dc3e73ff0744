package model

type CustomerInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type ShippingAddressRequest struct {
	ProvinceID uint64 `json:"province_id" validate:"required"`
	City       string `json:"city" validate:"required"`
	Street     string `json:"street_address" validate:"required"`
	PostalCode string `json:"postal_code,omitempty"`
}

type CheckoutRequest struct {
	CustomerInfo    *CustomerInfo           `json:"customer_info,omitempty"`
	ShippingAddress *ShippingAddressRequest `json:"shipping_address"`
	GuestID         string                  `json:"guest_id,omitempty"`
}

type CheckoutResponse struct {
	OrderID      uint64  `json:"order_id"`
	Total        float64 `json:"total"`
	CustomerType string  `json:"customer_type"`
	Message      string  `json:"message"`
}

type CompleteCheckoutRequest struct {
	OrderID       uint64 `json:"order_id"`
	PaymentMethod string `json:"payment_method,omitempty"`
	GuestID       string `json:"guest_id,omitempty"`
}

type CompleteCheckoutResponse struct {
	OrderID uint64 `json:"order_id"`
	Message string `json:"message"`
}
