package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
)

// identify resolves the cart owner for r. A freshly allocated guest session is
// handed back as a cookie, and guests always get their id echoed in X-Guest-ID.
func (s *RestHandler) identify(w http.ResponseWriter, r *http.Request, bodyGuestID string) model.Identity {
	if id, ok := utilsContext.GetIdentity(r.Context()); ok && id.IsAuthenticated() {
		return id
	}

	in := model.IdentitySourceInput{
		BearerToken:   bearerToken(r),
		BodyGuestID:   bodyGuestID,
		QueryGuestID:  r.URL.Query().Get("guest_id"),
		HeaderGuestID: r.Header.Get(constant.GuestIDHeader),
	}

	var sessionID string
	if c, err := r.Cookie(s.Config.Guest.CookieName); err == nil {
		sessionID = c.Value
	}

	identity, newSessionID := s.IdentityApp.Resolve(r.Context(), in, sessionID)
	if newSessionID != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     s.Config.Guest.CookieName,
			Value:    newSessionID,
			Path:     "/",
			MaxAge:   int(s.Config.Guest.SessionTTL.Seconds()),
			HttpOnly: true,
			Secure:   s.Config.Guest.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	if identity.Type == model.IdentityGuest {
		w.Header().Set(constant.GuestIDHeader, identity.ID)
	}

	return identity
}
