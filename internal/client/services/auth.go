// Package services contains application services for the RelatioNest client.
// This file defines the authentication service: register, login and logout.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/relationest/internal/client/client"
	"github.com/dmitrijs2005/relationest/internal/client/models"
	"github.com/dmitrijs2005/relationest/internal/common"
)

// Session is the part of the session guard the services drive.
type Session interface {
	Establish(ctx context.Context, token string, user *models.User) error
	Logout(ctx context.Context)
	HandleUnauthorized(ctx context.Context)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account and start a session for it.
//   - Login: authenticate and start a session.
//   - Logout: end the session locally.
//
// A session counts as started only once the credential has been stored.
type AuthService interface {
	Register(ctx context.Context, username, email string, password []byte) (models.User, error)
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Logout(ctx context.Context)
}

type authService struct {
	client  client.Client
	session Session
}

// NewAuthService constructs an AuthService bound to the given API client and
// session guard.
func NewAuthService(client client.Client, session Session) AuthService {
	return &authService{client: client, session: session}
}

func (a *authService) Register(ctx context.Context, username, email string, password []byte) (models.User, error) {
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	switch {
	case username == "" || email == "" || len(password) == 0:
		return models.User{}, fmt.Errorf("%w: username, email and password are required", common.ErrValidation)
	case !models.ValidEmail(email):
		return models.User{}, fmt.Errorf("%w: please enter a valid email address", common.ErrValidation)
	}

	resp, err := a.client.Register(ctx, models.RegisterRequest{Username: username, Email: email, Password: string(password)})
	if err != nil {
		return models.User{}, fmt.Errorf("register error: %w", err)
	}
	return a.establish(ctx, resp, models.User{Username: username, Email: email})
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return models.User{}, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	resp, err := a.client.Login(ctx, models.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return models.User{}, fmt.Errorf("login error: %w", err)
	}
	return a.establish(ctx, resp, models.User{Email: email})
}

// establish stores the credential. fallback describes the user when the
// server sent no profile; it is returned but not cached.
func (a *authService) establish(ctx context.Context, resp *models.AuthResponse, fallback models.User) (models.User, error) {
	if err := a.session.Establish(ctx, resp.Token, resp.User); err != nil {
		return models.User{}, fmt.Errorf("session not saved: %w", err)
	}
	if resp.User == nil {
		return fallback, nil
	}
	return *resp.User, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Logout(ctx)
}
