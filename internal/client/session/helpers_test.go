package session

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/relationest/internal/client/repositories/kv"
)

var errDiskGone = errors.New("disk gone")

func makeToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func tokenExpiringAt(t *testing.T, exp time.Time) string {
	t.Helper()
	return makeToken(t, jwt.MapClaims{"userId": "u-1", "exp": exp.Unix()})
}

// brokenRepo fails every operation, like a disabled or full disk.
type brokenRepo struct{}

func (brokenRepo) Get(context.Context, string) ([]byte, error)     { return nil, errDiskGone }
func (brokenRepo) Set(context.Context, string, []byte) error       { return errDiskGone }
func (brokenRepo) Delete(context.Context, string) error            { return errDiskGone }
func (brokenRepo) List(context.Context) (map[string][]byte, error) { return nil, errDiskGone }
func (brokenRepo) Clear(context.Context) error                     { return errDiskGone }
func (brokenRepo) InTx(context.Context, func(context.Context, kv.Repository) error) error {
	return errDiskGone
}

type navCall struct {
	path  string
	query url.Values
}

type fakeNav struct {
	calls []navCall
	err   error
	panic bool
}

func (f *fakeNav) Navigate(_ context.Context, path string, query url.Values) error {
	f.calls = append(f.calls, navCall{path: path, query: query})
	if f.panic {
		panic("router exploded")
	}
	return f.err
}

// fakeClock is a settable clock.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGuard(t *testing.T) (*Guard, *Store, *fakeNav, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := NewStore(kv.NewMemoryRepository(), nil)
	nav := &fakeNav{}
	g := NewGuard(store, nil, WithClock(clock.Now), WithNavigator(nav))
	return g, store, nav, clock
}
