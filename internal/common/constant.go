// Package common contains shared constants and sentinel errors used across
// RelatioNest client components.
package common

// Keys of the local key-value store.
const (
	// TokenKey holds the single authentication credential.
	TokenKey = "token"
	// UserProfileKey holds the JSON-encoded profile returned at login. It is a
	// cache and never authoritative.
	UserProfileKey = "userData"
)

// HTTP header names used on outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "
	RequestIDHeaderName     = "X-Request-ID"
)

// Well-known views of the client.
const (
	HomePath    = "/"
	LoginPath   = "/login"
	SignupPath  = "/signup"
	MainPath    = "/main"
	HistoryPath = "/ChatHistory"
	AboutPath   = "/about"
	FAQPath     = "/faq"
	PrivacyPath = "/privacy"
	ContactPath = "/contact"

	// ReturnToParam carries the view the user asked for before being sent
	// to the login view.
	ReturnToParam = "returnTo"
)
