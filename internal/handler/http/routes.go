package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// authMode selects which authorization gate guards a route.
type authMode int

const (
	// authNone runs no gate; the handler never sees an identity.
	authNone authMode = iota

	// authOptional attaches an identity when a valid bearer token is
	// presented but never rejects the request.
	authOptional

	// authRequired rejects the request with 401 unless a valid bearer
	// token is presented.
	authRequired
)

// route declares a single API operation. The chi mux and the generated API
// description served by openAPIDocument are both derived from this table,
// so the documentation cannot drift from the actual routing.
type route struct {
	method  string
	pattern string
	summary string
	auth    authMode
	handler http.HandlerFunc
}

func (h *Handler) routes() []route {
	return []route{
		{http.MethodGet, "/", "API welcome message", authNone, h.root},
		{http.MethodGet, "/hello", "Greeting, personalised for authenticated callers", authOptional, h.hello},
		{http.MethodPost, "/palindrome", "Reverse the word supplied in the request body", authNone, h.reverseBody},
		{http.MethodGet, "/palindrome/{word}", "Reverse the word supplied as a path segment", authNone, h.reversePath},
		{http.MethodPost, "/auth/register", "Register a new account", authNone, h.register},
		{http.MethodPost, "/auth/verify-token", "Verify a bearer token", authNone, h.verifyToken},
		{http.MethodGet, "/auth/user", "Fetch the caller's profile", authRequired, h.profile},
		{http.MethodPut, "/auth/user", "Update the caller's profile", authRequired, h.updateProfile},
		{http.MethodDelete, "/auth/user", "Delete the caller's account", authRequired, h.deleteAccount},
		{http.MethodGet, "/docs/openapi.json", "Machine-readable API description", authNone, h.openAPIDocument},
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	grouped := make(map[authMode][]route)
	for _, rt := range h.routes() {
		grouped[rt.auth] = append(grouped[rt.auth], rt)
	}

	// open routes
	router.Group(func(r chi.Router) {
		for _, rt := range grouped[authNone] {
			r.Method(rt.method, rt.pattern, rt.handler)
		}
	})

	// routes where authentication is informative but not required
	router.Group(func(r chi.Router) {
		r.Use(h.authOptional)
		for _, rt := range grouped[authOptional] {
			r.Method(rt.method, rt.pattern, rt.handler)
		}
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		for _, rt := range grouped[authRequired] {
			r.Method(rt.method, rt.pattern, rt.handler)
		}
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
