package client

import (
	"context"

	"github.com/dmitrijs2005/relationest/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	SubmitChat(ctx context.Context, sub models.ChatSubmission) (*models.ChatReply, error)
	ContinueChat(ctx context.Context, req models.ContinueChatRequest) (*models.ChatReply, error)
	ListChats(ctx context.Context) ([]models.Chat, error)
	GetChat(ctx context.Context, id string) (*models.Chat, error)
	DeleteChat(ctx context.Context, id string) error
	SubmitContact(ctx context.Context, msg models.ContactMessage) (*models.ContactResponse, error)
}

// TokenSource yields the credential for authenticated requests.
type TokenSource interface {
	Read(ctx context.Context) (string, bool)
}
