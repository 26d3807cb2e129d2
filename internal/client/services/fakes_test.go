package services

import (
	"context"

	"github.com/dmitrijs2005/relationest/internal/client/models"
)

// ---- fake client ----

type fakeClient struct {
	RegisterRet *models.AuthResponse
	RegisterErr error
	LoginRet    *models.AuthResponse
	LoginErr    error

	SubmitRet   *models.ChatReply
	SubmitErr   error
	ContinueRet *models.ChatReply
	ContinueErr error
	ListRet     []models.Chat
	ListErr     error
	GetRet      *models.Chat
	GetErr      error
	DeleteErr   error

	ContactRet *models.ContactResponse
	ContactErr error

	LastRegister models.RegisterRequest
	LastLogin    models.LoginRequest
	LastSubmit   models.ChatSubmission
	LastContinue models.ContinueChatRequest
	LastGetID    string
	LastDeleteID string
	LastContact  models.ContactMessage
	Calls        int
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.Calls++
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.Calls++
	f.LastLogin = req
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) SubmitChat(_ context.Context, sub models.ChatSubmission) (*models.ChatReply, error) {
	f.Calls++
	f.LastSubmit = sub
	return f.SubmitRet, f.SubmitErr
}

func (f *fakeClient) ContinueChat(_ context.Context, req models.ContinueChatRequest) (*models.ChatReply, error) {
	f.Calls++
	f.LastContinue = req
	return f.ContinueRet, f.ContinueErr
}

func (f *fakeClient) ListChats(context.Context) ([]models.Chat, error) {
	f.Calls++
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetChat(_ context.Context, id string) (*models.Chat, error) {
	f.Calls++
	f.LastGetID = id
	return f.GetRet, f.GetErr
}

func (f *fakeClient) DeleteChat(_ context.Context, id string) error {
	f.Calls++
	f.LastDeleteID = id
	return f.DeleteErr
}

func (f *fakeClient) SubmitContact(_ context.Context, msg models.ContactMessage) (*models.ContactResponse, error) {
	f.Calls++
	f.LastContact = msg
	return f.ContactRet, f.ContactErr
}

// ---- fake session ----

type fakeSession struct {
	EstablishErr error

	Token        string
	User         *models.User
	LoggedOut    int
	Unauthorized int
}

func (f *fakeSession) Establish(_ context.Context, token string, user *models.User) error {
	if f.EstablishErr != nil {
		return f.EstablishErr
	}
	f.Token, f.User = token, user
	return nil
}

func (f *fakeSession) Logout(context.Context) { f.LoggedOut++ }

func (f *fakeSession) HandleUnauthorized(context.Context) { f.Unauthorized++ }
