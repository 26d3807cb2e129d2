package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/relationest/internal/client/client"
	"github.com/dmitrijs2005/relationest/internal/client/models"
	"github.com/dmitrijs2005/relationest/internal/common"
)

// ChatService submits questions to the advisor and manages chat history.
// When the server rejects the credential the session is ended before the
// error is returned; such errors match common.ErrUpstreamUnauthorized.
type ChatService interface {
	Submit(ctx context.Context, sub models.ChatSubmission) (*models.ChatReply, error)
	Continue(ctx context.Context, req models.ContinueChatRequest) (*models.ChatReply, error)
	List(ctx context.Context) ([]models.Chat, error)
	Get(ctx context.Context, id string) (*models.Chat, error)
	Delete(ctx context.Context, id string) error
}

type chatService struct {
	client  client.Client
	session Session
}

func NewChatService(client client.Client, session Session) ChatService {
	return &chatService{client: client, session: session}
}

func (c *chatService) Submit(ctx context.Context, sub models.ChatSubmission) (*models.ChatReply, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	reply, err := c.client.SubmitChat(ctx, sub)
	if err != nil {
		return nil, c.check(ctx, "submit chat", err)
	}
	return reply, nil
}

func (c *chatService) Continue(ctx context.Context, req models.ContinueChatRequest) (*models.ChatReply, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	reply, err := c.client.ContinueChat(ctx, req)
	if err != nil {
		return nil, c.check(ctx, "continue chat", err)
	}
	return reply, nil
}

// List returns the user's chats, newest first.
func (c *chatService) List(ctx context.Context) ([]models.Chat, error) {
	chats, err := c.client.ListChats(ctx)
	if err != nil {
		return nil, c.check(ctx, "list chats", err)
	}
	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].CreatedAt.After(chats[j].CreatedAt)
	})
	return chats, nil
}

func (c *chatService) Get(ctx context.Context, id string) (*models.Chat, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: chat id is required", common.ErrValidation)
	}
	chat, err := c.client.GetChat(ctx, id)
	if err != nil {
		return nil, c.check(ctx, "get chat", err)
	}
	return chat, nil
}

func (c *chatService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: chat id is required", common.ErrValidation)
	}
	if err := c.client.DeleteChat(ctx, id); err != nil {
		return c.check(ctx, "delete chat", err)
	}
	return nil
}

func (c *chatService) check(ctx context.Context, op string, err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		c.session.HandleUnauthorized(ctx)
		return fmt.Errorf("%s: %w: %w", op, common.ErrUpstreamUnauthorized, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
