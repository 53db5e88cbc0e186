package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/internal/utils"
	"github.com/avolkov/reverso/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, messageResponse{Message: "Welcome to the reverso API"}, http.StatusOK)
}

// hello greets the caller. The route sits behind the optional gate: an
// anonymous caller gets the generic greeting, an authenticated one is
// greeted by name.
func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	message := "Hello, World!"

	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		name := identity.Name
		if name == "" {
			name = identity.Email
		}
		if name != "" {
			message = fmt.Sprintf("Hello, %s!", name)
		}
	}

	writeJSON(w, r, messageResponse{Message: message}, http.StatusOK)
}

// reverseBody handles POST /palindrome with the word in the JSON body.
func (h *Handler) reverseBody(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PalindromeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON")
		return
	}

	reversed, err := h.services.WordsService.Reverse(ctx, req.Word)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, reversed, http.StatusOK)
}

// reversePath handles GET /palindrome/{word}. The path segment is
// mandatory by routing, so no further validation runs here.
func (h *Handler) reversePath(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reversed, err := h.services.WordsService.Reverse(ctx, chi.URLParam(r, "word"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, reversed, http.StatusOK)
}
