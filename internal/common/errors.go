// Package common defines shared constants and sentinel errors used across
// the client layers of RelatioNest. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage errors.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Credential errors.
	ErrNoCredential        = errors.New("no credential stored")
	ErrMalformedCredential = errors.New("malformed credential")
	ErrExpiredCredential   = errors.New("credential expired")

	// Upstream errors.
	ErrUpstreamUnauthorized = errors.New("session rejected by server")

	// Validation errors.
	ErrValidation = errors.New("validation error")
)
