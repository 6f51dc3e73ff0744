package constant

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

type CustomerType string

const (
	CustomerTypeGuest         CustomerType = "guest"
	CustomerTypeAuthenticated CustomerType = "authenticated"
)

const (
	PaymentProviderPayFast = "payfast"

	// PayFastStatusComplete is the payment_status value PayFast posts for a settled payment.
	PayFastStatusComplete = "COMPLETE"
)
