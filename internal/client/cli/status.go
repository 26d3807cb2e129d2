package cli

import (
	"context"
	"fmt"
	"time"
)

// getStatus renders the prompt status: the current view and, when a session
// is active, who is logged in and for how long.
func (a *App) getStatus(ctx context.Context) string {
	loc := a.router.Current().Path

	claims, err := a.guard.Claims(ctx)
	if err != nil || claims.Expired(a.now()) {
		return loc
	}

	name := claims.UserID
	if user, ok := a.guard.Profile(ctx); ok {
		name = user.DisplayName()
	}
	return fmt.Sprintf("%s (%s, %s left)", loc, name, formatRemaining(claims.Remaining(a.now())))
}

// formatRemaining prints d rounded down to minutes, or "<1m".
func formatRemaining(d time.Duration) string {
	d = d.Truncate(time.Minute)
	switch {
	case d < time.Minute:
		return "<1m"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 48*time.Hour:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	default:
		return fmt.Sprintf("%dd", int(d.Hours())/24)
	}
}
