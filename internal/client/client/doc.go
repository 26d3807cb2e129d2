// Package client talks to the RelatioNest HTTP API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Register,
//     Login, chat submission and history, and contact messages.
//  2. A concrete HTTP/JSON implementation (see HTTPClient). Requests that need
//     a session carry the stored credential as a bearer token, added by a
//     RoundTripper; every request carries an X-Request-ID.
//
// # Error Handling
//
// Status codes are mapped to sentinel errors that callers match with
// errors.Is: ErrUnauthorized (401), ErrUnavailable (network failures,
// 502, 503, 504). Other failures surface as *APIError carrying the server's
// message; a 401 wraps both ErrUnauthorized and an *APIError. Auth
// responses without a token yield ErrNoToken.
//
// Idempotent GET requests are retried with exponential backoff while the
// server is unavailable.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and are additionally bounded by the configured timeout.
package client
