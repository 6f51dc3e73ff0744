package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrInvalidQuantity
	ErrCartNotFound
	ErrEmptyCart
	ErrCustomerInfoRequired
	ErrShippingAddressRequired
	ErrInvalidProvince
	ErrOrderNotFound
	ErrGuestIDRequired
	ErrInvalidAmount
	ErrPaymentNotConfigured
	ErrInvalidSignature
	ErrEmptyCallback
	ErrProductNotFound
	ErrInvalidRating
	ErrMissingSignature
	ErrProductIDRequired
	ErrOrderIDRequired
	ErrPaymentInitFailed
	ErrAllFieldsRequired
	ErrMissingRequiredFields
	ErrTooManyRequests
	ErrInvalidGuestID
	ErrInvalidEmail
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                 "success",
	ErrInternal:                "error internal",
	ErrNotFound:                "data not found",
	ErrInvalidRequest:          "invalid request",
	ErrUnauthorize:             "unauthorize request",
	ErrCredentialExists:        "email or phone already exists",
	ErrInvalidPassword:         "password invalid",
	ErrInvalidQuantity:         "invalid quantity",
	ErrCartNotFound:            "cart not found",
	ErrEmptyCart:               "Cart is empty",
	ErrCustomerInfoRequired:    "Customer information required for guest checkout",
	ErrShippingAddressRequired: "Complete shipping address required",
	ErrInvalidProvince:         "Invalid province selected",
	ErrOrderNotFound:           "Order not found",
	ErrGuestIDRequired:         "Guest ID required",
	ErrInvalidAmount:           "Amount is required for payment.",
	ErrPaymentNotConfigured:    "Payment gateway is not configured. Please contact support.",
	ErrInvalidSignature:        "Payment verification failed. Invalid signature received.",
	ErrEmptyCallback:           "No callback data received from PayFast.",
	ErrProductNotFound:         "product not found",
	ErrInvalidRating:           "Rating must be a decimal number between 0 and 5",
	ErrMissingSignature:        "No signature received in callback.",
	ErrProductIDRequired:       "Product ID is required",
	ErrOrderIDRequired:         "Order ID required",
	ErrPaymentInitFailed:       "Failed to initiate payment. Please try again later.",
	ErrAllFieldsRequired:       "All fields are required",
	ErrMissingRequiredFields:   "Missing required fields",
	ErrTooManyRequests:         "too many requests",
	ErrInvalidGuestID:          "Invalid guest ID",
	ErrInvalidEmail:            "Invalid email address",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                 http.StatusOK,
	ErrInternal:                http.StatusInternalServerError,
	ErrNotFound:                http.StatusNotFound,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrUnauthorize:             http.StatusUnauthorized,
	ErrCredentialExists:        http.StatusBadRequest,
	ErrInvalidPassword:         http.StatusBadRequest,
	ErrInvalidQuantity:         http.StatusBadRequest,
	ErrCartNotFound:            http.StatusNotFound,
	ErrEmptyCart:               http.StatusBadRequest,
	ErrCustomerInfoRequired:    http.StatusBadRequest,
	ErrShippingAddressRequired: http.StatusBadRequest,
	ErrInvalidProvince:         http.StatusBadRequest,
	ErrOrderNotFound:           http.StatusNotFound,
	ErrGuestIDRequired:         http.StatusBadRequest,
	ErrInvalidAmount:           http.StatusBadRequest,
	ErrPaymentNotConfigured:    http.StatusBadRequest,
	ErrInvalidSignature:        http.StatusBadRequest,
	ErrEmptyCallback:           http.StatusBadRequest,
	ErrProductNotFound:         http.StatusNotFound,
	ErrInvalidRating:           http.StatusBadRequest,
	ErrMissingSignature:        http.StatusBadRequest,
	ErrProductIDRequired:       http.StatusBadRequest,
	ErrOrderIDRequired:         http.StatusBadRequest,
	ErrPaymentInitFailed:       http.StatusBadRequest,
	ErrAllFieldsRequired:       http.StatusBadRequest,
	ErrMissingRequiredFields:   http.StatusBadRequest,
	ErrTooManyRequests:         http.StatusTooManyRequests,
	ErrInvalidGuestID:          http.StatusBadRequest,
	ErrInvalidEmail:            http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                 "0000",
	ErrInternal:                "0001",
	ErrNotFound:                "0002",
	ErrInvalidRequest:          "0003",
	ErrUnauthorize:             "0004",
	ErrCredentialExists:        "0005",
	ErrInvalidPassword:         "0006",
	ErrInvalidQuantity:         "0007",
	ErrCartNotFound:            "0008",
	ErrEmptyCart:               "0009",
	ErrCustomerInfoRequired:    "0010",
	ErrShippingAddressRequired: "0011",
	ErrInvalidProvince:         "0012",
	ErrOrderNotFound:           "0013",
	ErrGuestIDRequired:         "0014",
	ErrInvalidAmount:           "0015",
	ErrPaymentNotConfigured:    "0016",
	ErrInvalidSignature:        "0017",
	ErrEmptyCallback:           "0018",
	ErrProductNotFound:         "0019",
	ErrInvalidRating:           "0020",
	ErrMissingSignature:        "0021",
	ErrProductIDRequired:       "0022",
	ErrOrderIDRequired:         "0023",
	ErrPaymentInitFailed:       "0024",
	ErrAllFieldsRequired:       "0025",
	ErrMissingRequiredFields:   "0026",
	ErrTooManyRequests:         "0027",
	ErrInvalidGuestID:          "0028",
	ErrInvalidEmail:            "0029",
}
