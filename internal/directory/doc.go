// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

// Package directory abstracts the external identity-and-document service
// that owns all durable state of the application: account principals,
// credential verification, and profile documents.
//
// The primary abstraction is [Provider]. The package ships two
// implementations: an HTTP/REST client ([NewHTTPProvider]) for a remote
// directory service, and an in-process directory ([NewMemoryProvider]) used
// for local development and tests.
//
// Error values defined in errors.go are mapped from provider responses so
// that callers can use [errors.Is] for implementation-agnostic error
// handling (e.g. [ErrEmailExists] for a duplicate registration,
// [ErrInvalidToken] for a failed verification). Any other error returned by
// a Provider method is a transport or provider fault.
package directory
