package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/internal/service"
	"github.com/avolkov/reverso/internal/utils"
	"github.com/avolkov/reverso/models"
)

// userResponse is the success envelope for account operations that return
// the profile document.
type userResponse struct {
	Message string             `json:"message,omitempty"`
	User    models.UserProfile `json:"user"`
}

// verifyTokenResponse is the envelope of POST /auth/verify-token. Unlike
// the other endpoints, an invalid token is a regular (negative) outcome
// here, reported with valid=false rather than the plain failure envelope.
type verifyTokenResponse struct {
	Valid   bool             `json:"valid"`
	User    *models.Identity `json:"user,omitempty"`
	Error   string           `json:"error,omitempty"`
	Message string           `json:"message,omitempty"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON")
		return
	}

	profile, err := h.services.AccountService.Register(ctx, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, userResponse{
		Message: "User registered successfully",
		User:    profile,
	}, http.StatusCreated)
}

func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON")
		return
	}

	identity, err := h.services.AccountService.VerifyToken(ctx, req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoToken):
			respondError(w, r, err)
			return
		case errors.Is(err, service.ErrInvalidToken):
			// A rejected token is a negative verification result, not a
			// server failure.
			writeJSON(w, r, verifyTokenResponse{
				Valid:   false,
				Error:   "Invalid token",
				Message: "The provided token is invalid or has expired",
			}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("token verification fault")
			respondError(w, r, err)
			return
		}
	}

	writeJSON(w, r, verifyTokenResponse{Valid: true, User: &identity}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := h.identityFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.AccountService.Profile(ctx, identity)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, userResponse{User: profile}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := h.identityFromRequest(w, r)
	if !ok {
		return
	}

	// An absent body is a valid no-op update; a malformed one is not.
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON")
		return
	}

	profile, err := h.services.AccountService.UpdateProfile(ctx, identity, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, userResponse{
		Message: "Profile updated successfully",
		User:    profile,
	}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := h.identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.AccountService.DeleteAccount(ctx, identity); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, messageResponse{Message: "Account deleted successfully"}, http.StatusOK)
}

// identityFromRequest fetches the identity the mandatory gate attached to
// the request context. A protected handler running without one is a
// routing bug; the caller gets a generic 500 and the handler must return.
func (h *Handler) identityFromRequest(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("protected handler reached without identity in context")
		writeError(w, r, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
	}
	return identity, ok
}
