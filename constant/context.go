package constant

type contextKey string

const (
	ClaimsKey    contextKey = "claims"
	IdentityKey  contextKey = "identity"
	RequestIDKey contextKey = "request_id"
)

const (
	GuestIDHeader   = "X-Guest-ID"
	RequestIDHeader = "X-Request-ID"
)
