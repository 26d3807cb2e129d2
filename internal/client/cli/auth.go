package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/relationest/internal/client/models"
	"github.com/dmitrijs2005/relationest/internal/common"
)

// getSimpleText, getPassword and friends are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline
var getChoice = GetChoice
var getConfirm = GetConfirm

// Signup prompts for a username, email and password and creates an account.
// A successful signup is also a login. The password byte slice is wiped
// before returning.
func (a *App) Signup(ctx context.Context) error {
	if err := a.enter(ctx, common.SignupPath); err != nil {
		return err
	}

	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Register(ctx, userName, email, password)
	if err != nil {
		return err
	}

	a.notifySuccess(ctx, fmt.Sprintf("Successfully registered! Welcome, %s.", user.DisplayName()))
	return a.Go(ctx, common.MainPath)
}

// Login prompts for credentials and authenticates. On success the user is
// taken to the view they were sent away from, or the main view.
func (a *App) Login(ctx context.Context) error {
	if err := a.enter(ctx, common.LoginPath); err != nil {
		return err
	}
	target := a.router.ReturnTarget(a.router.Current().Query)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.notifySuccess(ctx, fmt.Sprintf("Successfully logged in! Welcome back, %s.", user.DisplayName()))
	return a.Go(ctx, target)
}

// Logout ends the session; the guard shows the login view.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.lastChatID = ""
	a.apiKeys = models.APIKeys{}
	fmt.Fprintln(a.out, "Logged out.")
	return a.render(ctx)
}

// Whoami prints the cached profile and the time left on the session.
func (a *App) Whoami(ctx context.Context) error {
	claims, err := a.guard.Claims(ctx)
	if err != nil || claims.Expired(a.now()) {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	if user, ok := a.guard.Profile(ctx); ok {
		fmt.Fprintf(a.out, "User:     %s\n", user.DisplayName())
		if user.Email != "" {
			fmt.Fprintf(a.out, "Email:    %s\n", user.Email)
		}
	} else if claims.UserID != "" {
		fmt.Fprintf(a.out, "User id:  %s\n", claims.UserID)
	}
	fmt.Fprintf(a.out, "Session:  expires %s (%s left)\n",
		claims.ExpiresAt.Local().Format("2006-01-02 15:04"), formatRemaining(claims.Remaining(a.now())))
	return nil
}
