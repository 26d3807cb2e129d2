package cli

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/relationest/internal/client/models"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "<1m"},
		{d: 59 * time.Second, want: "<1m"},
		{d: 54*time.Minute + 30*time.Second, want: "54m"},
		{d: 2*time.Hour + 5*time.Minute, want: "2h05m"},
		{d: 72 * time.Hour, want: "3d"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRemaining(tt.d), tt.d.String())
	}
}

func TestGetStatus(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, http.NotFoundHandler())

	assert.Equal(t, "/", a.getStatus(ctx))

	loginAs(t, a, &models.User{Username: "alice"})
	assert.Regexp(t, `^/ \(alice, (59m|1h00m) left\)$`, a.getStatus(ctx))

	a.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	assert.Equal(t, "/", a.getStatus(ctx))
}
