package cli

import (
	"context"

	"github.com/dmitrijs2005/relationest/internal/client/models"
	"github.com/dmitrijs2005/relationest/internal/common"
)

// Contact sends a message to the RelatioNest team. No session is needed.
func (a *App) Contact(ctx context.Context) error {
	if err := a.enter(ctx, common.ContactPath); err != nil {
		return err
	}

	var msg models.ContactMessage
	var err error
	if msg.Name, err = getSimpleText(a.reader, "Your name", a.out); err != nil {
		return err
	}
	if msg.Email, err = getSimpleText(a.reader, "Your email", a.out); err != nil {
		return err
	}
	if msg.Message, err = getMultiline(a.reader, "Your message", a.out); err != nil {
		return err
	}

	text, err := a.contactService.Submit(ctx, msg)
	if err != nil {
		return err
	}
	a.notifySuccess(ctx, text)
	return nil
}
