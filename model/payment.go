package model

import "encoding/json"

type InitiatePaymentRequest struct {
	Amount     json.Number `json:"amount"`
	ItemName   string      `json:"item_name,omitempty"`
	ReturnURL  string      `json:"return_url,omitempty"`
	CancelURL  string      `json:"cancel_url,omitempty"`
	MPaymentID string      `json:"m_payment_id,omitempty"`
	OrderID    uint64      `json:"order_id,omitempty"`
}

type InitiatePaymentResponse struct {
	PaymentURL string `json:"payment_url"`
	MPaymentID string `json:"m_payment_id"`
}

type PaymentNotificationEntity struct {
	OrderID  *uint64
	Provider string
	Payload  string
	Status   string
}

type MarkOrderPaidTxItem struct {
	OrderID  uint64
	Provider string
	Payload  string
}

type PaymentCallbackResponse struct {
	OrderID *uint64 `json:"order_id,omitempty"`
	Message string  `json:"message"`
}
