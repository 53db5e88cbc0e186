// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package http

import "errors"

// Sentinel errors used by the authorization gates when parsing the
// "Authorization" HTTP header. Callers can match against them with
// [errors.Is]. All three describe the "missing credential" gate outcome:
// the request never carried a usable bearer token.
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request
	// does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNotBearerScheme is returned when the "Authorization" header is
	// present but does not use the "Bearer" scheme marker.
	ErrNotBearerScheme = errors.New("`Authorization` header does not carry a Bearer credential")

	// ErrEmptyToken is returned when the "Authorization" header contains
	// the Bearer scheme marker but the token value itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
