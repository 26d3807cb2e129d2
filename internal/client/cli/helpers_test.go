package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/relationest/internal/client/config"
	"github.com/dmitrijs2005/relationest/internal/client/models"
	"github.com/dmitrijs2005/relationest/internal/client/repositories/kv"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u-1",
		"exp":    exp.Unix(),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return tok
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// newTestApp wires an App against an in-memory store and the given API.
func newTestApp(t *testing.T, api http.Handler) (*App, *bytes.Buffer) {
	t.Helper()
	return newTestAppWithRepo(t, api, kv.NewMemoryRepository())
}

// newTestAppWithRepo is newTestApp over a caller-owned store.
func newTestAppWithRepo(t *testing.T, api http.Handler, repo kv.Repository) (*App, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	cfg := &config.Config{APIBaseURL: srv.URL, RequestTimeout: 5 * time.Second}
	out := &bytes.Buffer{}
	a, err := newApp(cfg, repo, nil, bufio.NewReader(strings.NewReader("")), out)
	require.NoError(t, err)
	return a, out
}

// loginAs stores a valid session directly.
func loginAs(t *testing.T, a *App, user *models.User) {
	t.Helper()
	require.NoError(t, a.guard.Establish(context.Background(), signedToken(t, time.Now().Add(time.Hour)), user))
}

// stubAnswers feeds the interactive prompts from a queue, in order.
func stubAnswers(t *testing.T, answers ...string) {
	t.Helper()
	next := func() string {
		require.NotEmpty(t, answers, "more prompts than answers")
		a := answers[0]
		answers = answers[1:]
		return a
	}

	origST, origPW, origML, origCH, origCF := getSimpleText, getPassword, getMultiline, getChoice, getConfirm
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return next(), nil }
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return next(), nil }
	getChoice = func(*bufio.Reader, string, []string, io.Writer) (string, error) { return next(), nil }
	getConfirm = func(*bufio.Reader, string, io.Writer) (bool, error) { return next() == "y", nil }
	getPassword = func(io.Writer) ([]byte, error) { return []byte(next()), nil }

	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline, getChoice, getConfirm = origST, origPW, origML, origCH, origCF
		require.Empty(t, answers, "unused answers")
	})
}
