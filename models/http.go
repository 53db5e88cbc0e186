package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	// Email is required and becomes the principal's login identifier.
	Email string `json:"email"`

	// Password is required and must be at least 6 characters long.
	// It is handed to the directory untouched and never stored here.
	Password string `json:"password"`

	// DisplayName is optional and passed through unchanged.
	DisplayName string `json:"displayName,omitempty"`

	// PhotoURL is optional and passed through unchanged.
	PhotoURL string `json:"photoURL,omitempty"`
}

// VerifyTokenRequest is the body of POST /auth/verify-token.
type VerifyTokenRequest struct {
	// IDToken is the raw bearer token to verify. Required.
	IDToken string `json:"idToken"`
}

// UpdateProfileRequest is the body of PUT /auth/user. Every field is
// optional; a nil field is left untouched by the update. An entirely empty
// request still succeeds and only refreshes the document's UpdatedAt stamp.
type UpdateProfileRequest struct {
	DisplayName *string        `json:"displayName,omitempty"`
	PhotoURL    *string        `json:"photoURL,omitempty"`
	Bio         *string        `json:"bio,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// PalindromeRequest is the body of POST /palindrome.
type PalindromeRequest struct {
	// Word is the string to reverse. Required and non-empty.
	Word string `json:"word"`
}

// ReversedWord is the success body of both palindrome endpoints.
type ReversedWord struct {
	Original   string `json:"original"`
	Palindrome string `json:"palindrome"`
}
