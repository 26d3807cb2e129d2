package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/relationest/internal/common"
)

// Claims is the decoded view of a credential. ExpiresAt is always set.
type Claims struct {
	Subject   string
	UserID    string
	ExpiresAt time.Time
}

// tokenClaims mirrors what the API puts in its tokens. The user id has
// shipped under both "userId" and "id".
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId,omitempty"`
	AltID  string `json:"id,omitempty"`
}

// DecodeClaims parses token without verifying its signature. It returns a
// complete Claims or an error wrapping common.ErrMalformedCredential.
func DecodeClaims(token string) (Claims, error) {
	var tc tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &tc); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", common.ErrMalformedCredential, err)
	}
	if tc.ExpiresAt == nil {
		return Claims{}, fmt.Errorf("%w: no exp claim", common.ErrMalformedCredential)
	}

	userID := tc.UserID
	if userID == "" {
		userID = tc.AltID
	}
	if userID == "" {
		userID = tc.Subject
	}

	return Claims{
		Subject:   tc.Subject,
		UserID:    userID,
		ExpiresAt: tc.ExpiresAt.Time,
	}, nil
}

// Expired compares at millisecond resolution: a credential is valid only
// while its expiry is strictly in the future.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt.UnixMilli() <= now.UnixMilli()
}

// Remaining is the time left before expiry, never negative.
func (c Claims) Remaining(now time.Time) time.Duration {
	if c.Expired(now) {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}
