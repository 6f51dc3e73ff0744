// Package jwks verifies RS256 tokens issued by a managed identity provider
// that publishes its signing keys as a JSON Web Key Set.
package jwks

import (
	"context"
	"net/http"
	"slices"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

var ErrAudience = errors.New("token audience mismatch")

type Verifier struct {
	keys     keyfunc.Keyfunc
	audience string
	issuer   string
}

// New fetches the key set once and keeps it fresh in the background until
// ctx is done. Keys for an unknown kid trigger a rate limited refetch.
func New(ctx context.Context, cfg config.AuthConfig, httpClient *http.Client) (*Verifier, error) {
	keys, err := keyfunc.NewDefaultOverrideCtx(ctx, []string{cfg.JWKSURL}, keyfunc.Override{
		Client:          httpClient,
		RefreshInterval: cfg.JWKSRefresh,
		RefreshErrorHandlerFunc: func(u string) func(ctx context.Context, err error) {
			return func(ctx context.Context, err error) {
				logger.Warn("[jwks] refresh key set", zap.String("url", u), zap.String("error", err.Error()))
			}
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "jwks keyfunc")
	}
	return newVerifier(cfg, keys), nil
}

func newVerifier(cfg config.AuthConfig, keys keyfunc.Keyfunc) *Verifier {
	return &Verifier{
		keys:     keys,
		audience: cfg.Audience,
		issuer:   cfg.Issuer,
	}
}

// Verify checks signature, expiry, audience and issuer and returns the
// identity claims. Both ID tokens and access tokens are accepted: the
// configured audience must appear in "aud" or, for access tokens, equal
// "client_id".
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*model.Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256"}), jwt.WithExpirationRequired()}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, v.keys.KeyfuncCtx(ctx), opts...); err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !v.audienceMatches(claims) {
		return nil, ErrAudience
	}

	sub, _ := claims.GetSubject()
	if sub == "" {
		return nil, errors.New("token has no subject")
	}

	out := &model.Claims{
		Subject: sub,
		Email:   stringClaim(claims, "email"),
		Name:    stringClaim(claims, "name"),
		Phone:   stringClaim(claims, "phone_number"),
	}
	if groups, ok := claims["cognito:groups"].([]interface{}); ok {
		for _, g := range groups {
			if s, ok := g.(string); ok {
				out.Groups = append(out.Groups, s)
			}
		}
	}
	return out, nil
}

func (v *Verifier) audienceMatches(claims jwt.MapClaims) bool {
	if v.audience == "" {
		return true
	}
	if aud, err := claims.GetAudience(); err == nil && slices.Contains(aud, v.audience) {
		return true
	}
	return stringClaim(claims, "client_id") == v.audience
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
