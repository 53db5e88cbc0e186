package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/internal/service"
	"github.com/avolkov/reverso/internal/utils"
)

// auth is the mandatory authorization gate used by protected routes.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, resolves it via [service.AccountService.VerifyToken], and on
// success stores the resolved [models.Identity] in the request context
// under [utils.IdentityCtxKey] before delegating to the next handler.
//
// The gate distinguishes three failure classes:
//   - No usable credential (header absent, non-Bearer scheme, empty token):
//     401 with the "No token provided" envelope.
//   - A credential the directory rejects: 401 with the "Invalid token"
//     envelope.
//   - A fault while asking the directory (transport error and the like):
//     500 with the "Authentication error" envelope. This is a system
//     failure, not a client one, and must not masquerade as a 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			writeError(w, r, http.StatusUnauthorized, "No token provided",
				"A Bearer token is required in the Authorization header")
			return
		}

		ctx := r.Context()
		identity, err := h.services.AccountService.VerifyToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrValidationNoToken):
				log.Err(err).Msg("token rejected")
				writeError(w, r, http.StatusUnauthorized, "Invalid token",
					"The provided token is invalid or has expired")
				return
			default:
				log.Err(err).Msg("token verification fault")
				writeError(w, r, http.StatusInternalServerError, "Authentication error",
					"Token verification could not be completed")
				return
			}
		}

		// Store the resolved identity in the context so that downstream
		// handlers can retrieve it without re-verifying the token.
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authOptional is the non-rejecting variant of the gate, used where
// authentication is informative but not required.
//
// When a valid bearer token is presented the resolved identity is attached
// exactly as the mandatory gate does; in every other case (no credential,
// an invalid one, a verification fault) the request simply proceeds
// without an identity. The handler decides what an anonymous caller sees.
func (h *Handler) authOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AccountService.VerifyToken(ctx, tokenString)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidToken) {
				log.Err(err).Msg("optional gate verification fault, proceeding unauthenticated")
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header must follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] if the header is absent entirely.
//   - [ErrNotBearerScheme] if the scheme marker is not "Bearer".
//   - [ErrEmptyToken] if the scheme marker is present but the token
//     value is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrNotBearerScheme
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
