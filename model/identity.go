package model

type IdentityType string

const (
	IdentityAuthenticated IdentityType = "authenticated"
	IdentityGuest         IdentityType = "guest"
)

// IdentitySource records which precedence branch produced an Identity.
type IdentitySource string

const (
	SourceBearer     IdentitySource = "bearer"
	SourceExplicit   IdentitySource = "explicit"
	SourceSession    IdentitySource = "session"
	SourceFabricated IdentitySource = "fabricated"
)

// Claims is the verified subset of an access token.
type Claims struct {
	Subject string   `json:"sub"`
	Email   string   `json:"email,omitempty"`
	Name    string   `json:"name,omitempty"`
	Phone   string   `json:"phone_number,omitempty"`
	Groups  []string `json:"groups,omitempty"`
}

// Identity is the owner key used for carts and orders.
type Identity struct {
	Type   IdentityType
	ID     string
	Claims *Claims
	Source IdentitySource
}

func (i Identity) IsAuthenticated() bool {
	return i.Type == IdentityAuthenticated
}

// IdentitySourceInput holds every identity hint a request can carry.
type IdentitySourceInput struct {
	BearerToken    string
	BodyGuestID    string
	QueryGuestID   string
	HeaderGuestID  string
	SessionGuestID string
}
