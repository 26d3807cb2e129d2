package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/relationest/internal/common"
)

type authKey struct{}

// withAuth marks the request context as needing the bearer credential.
func withAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, authKey{}, true)
}

func needsAuth(ctx context.Context) bool {
	v, _ := ctx.Value(authKey{}).(bool)
	return v
}

// bearerTransport stamps outgoing requests with a request id and, for
// requests marked by withAuth, the stored credential. When no credential is
// stored the request goes out without Authorization and the server decides.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	req = req.Clone(ctx)

	if req.Header.Get(common.RequestIDHeaderName) == "" {
		req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	req.Header.Del(common.AuthorizationHeaderName)
	if needsAuth(ctx) && t.tokens != nil {
		if token, ok := t.tokens.Read(ctx); ok {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
