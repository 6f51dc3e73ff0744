package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/model"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// TokenVerifier turns a bearer token into verified claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*model.Claims, error)
}

// guestIDPattern matches the ids this service hands out: guest_ followed by
// either 8 hex digits or a UUID. Account subjects never take this shape.
var guestIDPattern = regexp.MustCompile(`^guest_([0-9a-f]{8}|[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})$`)

// IsGuestID reports whether id is a well-formed guest id.
func IsGuestID(id string) bool {
	return guestIDPattern.MatchString(id)
}

// NewGuestID is the session-backed guest id.
func NewGuestID() string {
	return "guest_" + uuid.NewString()
}

// ResolveIdentity picks the cart owner for a request. Precedence:
// verified bearer token, explicit guest id (body, query, header), session
// guest id, then a fresh id from newGuestID. A failed verification falls
// through to the guest branches. Guest ids that are not well formed are
// ignored, and so are subjects that look like guest ids.
func ResolveIdentity(ctx context.Context, verifier TokenVerifier, in model.IdentitySourceInput, newGuestID func() string) model.Identity {
	if token := usable(in.BearerToken); token != "" && verifier != nil {
		claims, err := verifier.Verify(ctx, token)
		if err == nil && claims != nil && claims.Subject != "" && !IsGuestID(claims.Subject) {
			return model.Identity{
				Type:   model.IdentityAuthenticated,
				ID:     claims.Subject,
				Claims: claims,
				Source: model.SourceBearer,
			}
		}
		if err != nil {
			logger.FromContext(ctx).Debug("[ResolveIdentity] bearer token rejected", zap.String("error", err.Error()))
		}
	}

	for _, candidate := range []string{in.BodyGuestID, in.QueryGuestID, in.HeaderGuestID} {
		id := usable(candidate)
		if id == "" {
			continue
		}
		if !IsGuestID(id) {
			logger.FromContext(ctx).Debug("[ResolveIdentity] malformed guest id ignored", zap.String("guest_id", id))
			continue
		}
		return model.Identity{Type: model.IdentityGuest, ID: id, Source: model.SourceExplicit}
	}

	if id := usable(in.SessionGuestID); IsGuestID(id) {
		return model.Identity{Type: model.IdentityGuest, ID: id, Source: model.SourceSession}
	}

	return model.Identity{Type: model.IdentityGuest, ID: newGuestID(), Source: model.SourceFabricated}
}

// usable trims v and maps the values clients send for "no value" to "".
func usable(v string) string {
	v = strings.TrimSpace(v)
	switch v {
	case "", "null", "undefined":
		return ""
	}
	return v
}

// ShortGuestID is the unpersisted fallback id used without a session store.
func ShortGuestID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "guest_" + uuid.NewString()[:8]
	}
	return "guest_" + hex.EncodeToString(b)
}

// IdentityApp resolves identities and owns the guest session store.
type IdentityApp interface {
	// Resolve returns the identity and, when a new guest session was
	// allocated, its id so the caller can hand it to the client.
	Resolve(ctx context.Context, in model.IdentitySourceInput, sessionID string) (model.Identity, string)
	Verify(ctx context.Context, token string) (*model.Claims, error)
}

type identityAppImpl struct {
	config    *config.Config
	verifier  TokenVerifier
	redisRepo redisrepo.Repository
}

func NewIdentityApp(config *config.Config, verifier TokenVerifier, redisRepo redisrepo.Repository) IdentityApp {
	return &identityAppImpl{
		config:    config,
		verifier:  verifier,
		redisRepo: redisRepo,
	}
}

func (s *identityAppImpl) Verify(ctx context.Context, token string) (*model.Claims, error) {
	return s.verifier.Verify(ctx, token)
}

func (s *identityAppImpl) Resolve(ctx context.Context, in model.IdentitySourceInput, sessionID string) (model.Identity, string) {
	sessionsUp := s.redisRepo.Available()

	if sessionsUp && sessionID != "" && in.SessionGuestID == "" {
		guestID, err := s.redisRepo.GetGuestSession(ctx, sessionID)
		if err != nil {
			logger.FromContext(ctx).Warn("[Resolve] err GetGuestSession", zap.String("error", err.Error()))
			sessionsUp = false
		}
		in.SessionGuestID = guestID
	}

	newGuestID := ShortGuestID
	if sessionsUp {
		newGuestID = NewGuestID
	}

	identity := ResolveIdentity(ctx, s.verifier, in, newGuestID)
	if identity.Source != model.SourceFabricated || !sessionsUp {
		return identity, ""
	}

	newSessionID := uuid.NewString()
	if err := s.redisRepo.SetGuestSession(ctx, newSessionID, identity.ID, s.config.Guest.SessionTTL); err != nil {
		logger.FromContext(ctx).Warn("[Resolve] err SetGuestSession", zap.String("error", err.Error()))
		return identity, ""
	}
	return identity, newSessionID
}
