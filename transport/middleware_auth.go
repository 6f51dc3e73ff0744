package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/application/identity"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
	"github.com/muhammadheryan/storefront/utils/errors"
)

// AuthMiddleware rejects requests without a valid bearer token. On success the
// claims and the authenticated identity are stored in the request context.
func AuthMiddleware(verifier identity.TokenVerifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil || claims == nil || claims.Subject == "" || identity.IsGuestID(claims.Subject) {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithClaims(r.Context(), claims)
			ctx = utilsContext.WithIdentity(ctx, model.Identity{
				Type:   model.IdentityAuthenticated,
				ID:     claims.Subject,
				Claims: claims,
				Source: model.SourceBearer,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken returns the token of an "Authorization: Bearer" header, or "".
func bearerToken(r *http.Request) string {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
