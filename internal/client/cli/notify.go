package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/relationest/internal/client/client"
	"github.com/dmitrijs2005/relationest/internal/client/router"
	"github.com/dmitrijs2005/relationest/internal/common"
)

func (a *App) notifySuccess(ctx context.Context, msg string) {
	a.logger.Info(ctx, msg)
	fmt.Fprintln(a.out, "[ok] "+msg)
}

func (a *App) notifyError(ctx context.Context, msg string) {
	a.logger.Warn(ctx, msg)
	fmt.Fprintln(a.out, "[error] "+msg)
}

// report turns a command error into a user-facing notice.
func (a *App) report(ctx context.Context, err error) {
	if err == nil {
		return
	}
	a.logger.Debug(ctx, "command failed", "error", err)

	switch {
	case errors.Is(err, common.ErrUpstreamUnauthorized):
		// the guard has already told the user
	case errors.Is(err, router.ErrAuthRequired):
		a.notifyError(ctx, "Please login to continue")
	case errors.Is(err, client.ErrUnavailable):
		a.notifyError(ctx, "The server is unavailable. Please try again later.")
	case errors.Is(err, common.ErrValidation):
		a.notifyError(ctx, err.Error())
	default:
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			a.notifyError(ctx, apiErr.Message)
			return
		}
		a.notifyError(ctx, err.Error())
	}
}
