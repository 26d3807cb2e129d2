package session

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/relationest/internal/client/models"
	"github.com/dmitrijs2005/relationest/internal/common"
	"github.com/dmitrijs2005/relationest/internal/logging"
)

// SessionExpiredMessage is shown when the API rejects the credential.
const SessionExpiredMessage = "Session expired. Please login again."

// Navigator switches the client to another view. query may be nil.
type Navigator interface {
	Navigate(ctx context.Context, path string, query url.Values) error
}

// Guard answers "is the client authenticated" and enforces the answer.
//
// Every check re-reads the store: the credential can expire, or be cleared
// by another process, between two navigations.
type Guard struct {
	store  *Store
	nav    Navigator
	now    func() time.Time
	notify func(ctx context.Context, msg string)
	logger logging.Logger
}

type Option func(*Guard)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) { g.now = now }
}

// WithNotifier sets the sink for user-visible notices.
func WithNotifier(fn func(ctx context.Context, msg string)) Option {
	return func(g *Guard) { g.notify = fn }
}

// WithNavigator sets the navigator at construction time.
func WithNavigator(nav Navigator) Option {
	return func(g *Guard) { g.nav = nav }
}

func NewGuard(store *Store, logger logging.Logger, opts ...Option) *Guard {
	if logger == nil {
		logger = logging.Nop()
	}
	g := &Guard{
		store:  store,
		now:    time.Now,
		notify: func(context.Context, string) {},
		logger: logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetNavigator wires the navigator after construction; the router and the
// guard reference each other.
func (g *Guard) SetNavigator(nav Navigator) {
	g.nav = nav
}

// Claims decodes the stored credential. Errors wrap common.ErrNoCredential,
// common.ErrMalformedCredential or common.ErrExpiredCredential; in the last
// case the decoded claims are returned as well.
func (g *Guard) Claims(ctx context.Context) (Claims, error) {
	token, ok := g.store.Read(ctx)
	if !ok {
		return Claims{}, common.ErrNoCredential
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.Expired(g.now()) {
		return claims, fmt.Errorf("%w at %s", common.ErrExpiredCredential, claims.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return claims, nil
}

// IsAuthenticated reports whether a decodable, unexpired credential is
// stored. Malformed and expired credentials are cleared on sight.
func (g *Guard) IsAuthenticated(ctx context.Context) bool {
	_, err := g.Claims(ctx)
	switch {
	case err == nil:
		return true
	case errors.Is(err, common.ErrMalformedCredential), errors.Is(err, common.ErrExpiredCredential):
		g.logger.Info(ctx, "dropping stored credential", "reason", err)
		g.store.ClearSession(ctx)
	}
	return false
}

// Establish stores a freshly issued credential and the user's profile.
// A credential that cannot be decoded or is already expired is refused.
func (g *Guard) Establish(ctx context.Context, token string, user *models.User) error {
	claims, err := DecodeClaims(token)
	if err != nil {
		return err
	}
	if claims.Expired(g.now()) {
		return common.ErrExpiredCredential
	}
	return g.store.SaveSession(ctx, token, user)
}

// RequireAuthOrRedirect lets the caller render currentPath when the client
// is authenticated. Otherwise it navigates to the login view, passing
// currentPath as the return hint, and returns false. A failed redirect is
// logged and leaves the current view in place.
func (g *Guard) RequireAuthOrRedirect(ctx context.Context, currentPath string) bool {
	if g.IsAuthenticated(ctx) {
		return true
	}

	var query url.Values
	if currentPath != "" && currentPath != common.LoginPath {
		query = url.Values{common.ReturnToParam: []string{currentPath}}
	}
	g.navigate(ctx, common.LoginPath, query)
	return false
}

// Logout clears the session and shows the login view. Calling it again is
// harmless.
func (g *Guard) Logout(ctx context.Context) {
	g.store.ClearSession(ctx)
	g.navigate(ctx, common.LoginPath, nil)
}

// HandleUnauthorized is the forced logout taken when the API rejects the
// credential.
func (g *Guard) HandleUnauthorized(ctx context.Context) {
	g.logger.Warn(ctx, "credential rejected by server")
	g.store.ClearSession(ctx)
	g.notify(ctx, SessionExpiredMessage)
	g.navigate(ctx, common.LoginPath, nil)
}

// Profile returns the cached profile of an authenticated client.
func (g *Guard) Profile(ctx context.Context) (models.User, bool) {
	if !g.IsAuthenticated(ctx) {
		return models.User{}, false
	}
	return g.store.Profile(ctx)
}

func (g *Guard) navigate(ctx context.Context, path string, query url.Values) {
	if g.nav == nil {
		g.logger.Warn(ctx, "no navigator, staying on current view", "target", path)
		return
	}

	defer func() {
		if p := recover(); p != nil {
			g.logger.Error(ctx, "navigation panicked", "target", path, "panic", p)
		}
	}()

	if err := g.nav.Navigate(ctx, path, query); err != nil {
		g.logger.Warn(ctx, "navigation failed", "target", path, "error", err)
	}
}
