package model

type NotificationKind string

const (
	NotificationOrderCustomer NotificationKind = "order_customer"
	NotificationOrderOperator NotificationKind = "order_operator"
	NotificationContact       NotificationKind = "contact"
)

// NotificationMessage is the queued email envelope.
type NotificationMessage struct {
	Kind    NotificationKind `json:"kind"`
	To      string           `json:"to"`
	Subject string           `json:"subject"`
	HTML    string           `json:"html"`
}
