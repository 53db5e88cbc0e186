package http

import (
	"errors"
	"net/http"

	"github.com/avolkov/reverso/internal/service"
)

// errorMapping binds a service sentinel to a status code and the failure
// envelope presented to the caller.
type errorMapping struct {
	status  int
	label   string
	message string
}

// errorStatusMap is the single source of truth for the five status classes
// this API emits: 400 validation, 401 authentication, 404 not found,
// 409 conflict, and (by fallthrough) 500 fault.
var errorStatusMap = map[error]errorMapping{
	service.ErrValidationNoWord:           {http.StatusBadRequest, "Please provide a word", "Request body must contain a non-empty \"word\" field"},
	service.ErrValidationNoCredentials:    {http.StatusBadRequest, "Email and password are required", "Request body must contain non-empty \"email\" and \"password\" fields"},
	service.ErrValidationPasswordTooShort: {http.StatusBadRequest, "Password must be at least 6 characters", "The supplied password is too short"},
	service.ErrValidationNoToken:          {http.StatusBadRequest, "Please provide a token", "Request body must contain a non-empty \"idToken\" field"},

	service.ErrInvalidToken: {http.StatusUnauthorized, "Invalid token", "The provided token is invalid or has expired"},

	service.ErrProfileNotFound: {http.StatusNotFound, "User not found", "No profile exists for this account"},

	service.ErrEmailTaken: {http.StatusConflict, "Email already exists", "An account with this email is already registered"},
}

func mapError(err error) (int, errorResponse) {
	for target, mapping := range errorStatusMap {
		if errors.Is(err, target) {
			return mapping.status, errorResponse{Error: mapping.label, Message: mapping.message}
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "Internal server error",
		Message: "An unexpected error occurred",
	}
}
