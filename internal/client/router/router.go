// Package router owns the client's current view and switches between views.
// Protected views are guarded on every navigation.
package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/dmitrijs2005/relationest/internal/common"
	"github.com/dmitrijs2005/relationest/internal/logging"
)

var (
	ErrUnknownRoute = errors.New("unknown route")
	ErrAuthRequired = errors.New("authentication required")
)

// Guard decides whether a protected view may be shown. When it may not, the
// guard is expected to navigate elsewhere itself.
type Guard interface {
	RequireAuthOrRedirect(ctx context.Context, currentPath string) bool
	IsAuthenticated(ctx context.Context) bool
}

// Route describes one view.
type Route struct {
	Path      string
	Title     string
	Protected bool
	// Redirect, when set, picks another path instead of showing this view.
	Redirect func(ctx context.Context, authenticated bool) string
}

// Location is the current view and its query.
type Location struct {
	Path  string
	Query url.Values
}

func (l Location) String() string {
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}

// Routes returns the client's route table.
func Routes() []Route {
	return []Route{
		{Path: common.HomePath, Title: "RelatioNest", Redirect: landing},
		{Path: common.LoginPath, Title: "Login"},
		{Path: common.SignupPath, Title: "Sign up"},
		{Path: common.AboutPath, Title: "About"},
		{Path: common.FAQPath, Title: "FAQ"},
		{Path: common.PrivacyPath, Title: "Privacy policy"},
		{Path: common.ContactPath, Title: "Contact"},
		{Path: common.MainPath, Title: "Relationship advice", Protected: true},
		{Path: common.HistoryPath, Title: "Chat history", Protected: true},
	}
}

func landing(_ context.Context, authenticated bool) string {
	if authenticated {
		return common.MainPath
	}
	return common.LoginPath
}

// maxRedirects bounds chains of Route.Redirect.
const maxRedirects = 4

type Router struct {
	mu      sync.RWMutex
	routes  map[string]Route
	guard   Guard
	current Location
	onEnter func(ctx context.Context, r Route, loc Location)
	logger  logging.Logger
}

type Option func(*Router)

// WithGuard sets the guard at construction time.
func WithGuard(g Guard) Option {
	return func(r *Router) { r.guard = g }
}

// WithOnEnter registers a callback run after every successful view switch.
func WithOnEnter(fn func(ctx context.Context, r Route, loc Location)) Option {
	return func(r *Router) { r.onEnter = fn }
}

func New(routes []Route, logger logging.Logger, opts ...Option) *Router {
	if logger == nil {
		logger = logging.Nop()
	}
	r := &Router{
		routes:  make(map[string]Route, len(routes)),
		current: Location{Path: common.HomePath},
		logger:  logger,
	}
	for _, rt := range routes {
		r.routes[rt.Path] = rt
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetGuard wires the guard after construction; the guard and the router
// reference each other.
func (r *Router) SetGuard(g Guard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guard = g
}

// Current returns the location of the last successful navigation.
func (r *Router) Current() Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Location{Path: r.current.Path, Query: cloneQuery(r.current.Query)}
}

// Route looks up a route by path.
func (r *Router) Route(path string) (Route, bool) {
	rt, ok := r.routes[path]
	return rt, ok
}

// Navigate switches to path. A protected path is first checked by the
// guard; when it refuses, the guard's own redirect stands and
// ErrAuthRequired is returned.
func (r *Router) Navigate(ctx context.Context, path string, query url.Values) error {
	for range maxRedirects {
		rt, ok := r.routes[path]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownRoute, path)
		}

		guard := r.getGuard()

		if rt.Redirect != nil {
			authenticated := guard != nil && guard.IsAuthenticated(ctx)
			if next := rt.Redirect(ctx, authenticated); next != "" && next != path {
				path, query = next, nil
				continue
			}
		}

		if rt.Protected {
			if guard == nil {
				return fmt.Errorf("%w: %s", ErrAuthRequired, path)
			}
			if !guard.RequireAuthOrRedirect(ctx, path) {
				return fmt.Errorf("%w: %s", ErrAuthRequired, path)
			}
		}

		loc := Location{Path: path, Query: cloneQuery(query)}
		r.mu.Lock()
		r.current = loc
		onEnter := r.onEnter
		r.mu.Unlock()

		r.logger.Debug(ctx, "navigated", "location", loc.String())
		if onEnter != nil {
			onEnter(ctx, rt, loc)
		}
		return nil
	}
	return fmt.Errorf("too many redirects navigating to %s", path)
}

// ReturnTarget resolves the return hint carried by the login view. Only
// in-app paths of known routes are honoured; anything else, including
// absolute and scheme-relative URLs, yields the main view.
func (r *Router) ReturnTarget(query url.Values) string {
	hint := query.Get(common.ReturnToParam)
	if hint == "" || !strings.HasPrefix(hint, "/") || strings.HasPrefix(hint, "//") || strings.Contains(hint, `\`) {
		return common.MainPath
	}
	u, err := url.Parse(hint)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return common.MainPath
	}
	if _, ok := r.routes[u.Path]; !ok {
		return common.MainPath
	}
	switch u.Path {
	case common.HomePath, common.LoginPath, common.SignupPath:
		return common.MainPath
	}
	return u.Path
}

func (r *Router) getGuard() Guard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.guard
}

func cloneQuery(q url.Values) url.Values {
	if q == nil {
		return nil
	}
	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	return out
}
