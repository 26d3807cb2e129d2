package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/relationest/internal/client/client"
	"github.com/dmitrijs2005/relationest/internal/client/models"
)

const (
	ContactSentMessage   = "Message sent successfully! We will get back to you soon."
	contactFailedMessage = "Failed to send message"
)

// ContactService delivers messages from the contact view. It works without
// a session.
type ContactService interface {
	Submit(ctx context.Context, msg models.ContactMessage) (string, error)
}

type contactService struct {
	client client.Client
}

func NewContactService(client client.Client) ContactService {
	return &contactService{client: client}
}

// Submit validates msg and sends it. The returned text is meant for the user.
func (c *contactService) Submit(ctx context.Context, msg models.ContactMessage) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	resp, err := c.client.SubmitContact(ctx, msg)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return "", errors.New(apiErr.Message)
		}
		return "", err
	}
	if !resp.Success {
		if resp.Message != "" {
			return "", errors.New(resp.Message)
		}
		return "", errors.New(contactFailedMessage)
	}
	return ContactSentMessage, nil
}
