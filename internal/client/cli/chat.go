package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/relationest/internal/client/models"
	"github.com/dmitrijs2005/relationest/internal/common"
)

// Chat fills in the advice form on the main view and shows the answer.
func (a *App) Chat(ctx context.Context) error {
	if err := a.enter(ctx, common.MainPath); err != nil {
		return err
	}

	var sub models.ChatSubmission
	var err error

	if sub.Name, err = getSimpleText(a.reader, "Your name", a.out); err != nil {
		return err
	}
	if sub.PartnerName, err = getSimpleText(a.reader, "Your partner's name", a.out); err != nil {
		return err
	}
	if sub.Age, err = getSimpleText(a.reader, "Your age (optional)", a.out); err != nil {
		return err
	}

	selected, err := getChoice(a.reader, "What is your main concern?", models.ConcernTypes, a.out)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	custom := ""
	if selected == models.OtherConcern {
		if custom, err = getSimpleText(a.reader, "Describe your concern", a.out); err != nil {
			return err
		}
	}
	sub.Concern = models.ResolveConcern(selected, custom)

	if sub.Message, err = getMultiline(a.reader, "Tell us more", a.out); err != nil {
		return err
	}
	if err := a.askAPIKeys(); err != nil {
		return err
	}
	sub.APIKey = a.apiKeys

	reply, err := a.chatService.Submit(ctx, sub)
	if err != nil {
		return err
	}

	a.lastChatID = reply.ChatID
	a.notifySuccess(ctx, "Message submitted successfully!")
	a.printAnswer(reply.AIResponse)
	return nil
}

// askAPIKeys offers to set the user's own provider keys once per process.
func (a *App) askAPIKeys() error {
	if a.apiKeys != (models.APIKeys{}) {
		return nil
	}
	use, err := getConfirm(a.reader, "Use your own AI API keys?", a.out)
	if err != nil || !use {
		return err
	}
	if a.apiKeys.Gemini, err = getSimpleText(a.reader, "Gemini API key (optional)", a.out); err != nil {
		return err
	}
	if a.apiKeys.OpenAI, err = getSimpleText(a.reader, "OpenAI API key (optional)", a.out); err != nil {
		return err
	}
	if a.apiKeys.Anthropic, err = getSimpleText(a.reader, "Anthropic API key (optional)", a.out); err != nil {
		return err
	}
	return nil
}

// Continue sends a follow-up to chatID, or to the last chat when empty.
func (a *App) Continue(ctx context.Context, chatID string) error {
	if err := a.enter(ctx, common.MainPath); err != nil {
		return err
	}
	if chatID == "" {
		chatID = a.lastChatID
	}
	if chatID == "" {
		return fmt.Errorf("%w: no chat to continue, start one with 'chat' or pick one with 'show <id>'", common.ErrValidation)
	}

	text, err := getMultiline(a.reader, "Your follow-up", a.out)
	if err != nil {
		return err
	}

	reply, err := a.chatService.Continue(ctx, models.ContinueChatRequest{ChatID: chatID, FollowUpMessage: text, APIKey: a.apiKeys})
	if err != nil {
		return err
	}

	a.lastChatID = reply.ChatID
	a.printAnswer(reply.AIResponse)
	return nil
}

func (a *App) printAnswer(text string) {
	fmt.Fprintln(a.out, "\nAI Advisor:")
	fmt.Fprintln(a.out, indent(text))
}

// History shows the chat history view.
func (a *App) History(ctx context.Context) error {
	return a.Go(ctx, common.HistoryPath)
}

func (a *App) listChats(ctx context.Context) error {
	chats, err := a.chatService.List(ctx)
	if err != nil {
		return err
	}
	if len(chats) == 0 {
		fmt.Fprintln(a.out, "No chats yet. Type 'chat' to start one.")
		return nil
	}
	for _, c := range chats {
		fmt.Fprintln(a.out, c.String())
	}
	fmt.Fprintln(a.out, "\nType 'show <id>' to read a chat or 'delete <id>' to remove it.")
	return nil
}

// Show prints one chat and makes it the target of 'continue'.
func (a *App) Show(ctx context.Context, id string) error {
	if err := a.enter(ctx, common.HistoryPath); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: usage: show <id>", common.ErrValidation)
	}

	chat, err := a.chatService.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nChat with %s about %s (%s)\n", chat.PartnerName, chat.Concern, chat.CreatedAt.Local().Format(time.DateTime))
	for _, m := range chat.Messages {
		fmt.Fprintf(a.out, "\n%s:\n%s\n", chat.Sender(m), indent(m.Text))
	}
	a.lastChatID = chat.ID
	return nil
}

// Delete removes a chat after confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.enter(ctx, common.HistoryPath); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: usage: delete <id>", common.ErrValidation)
	}

	ok, err := getConfirm(a.reader, "Are you sure you want to delete this chat?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.chatService.Delete(ctx, id); err != nil {
		return err
	}
	if a.lastChatID == id {
		a.lastChatID = ""
	}
	a.notifySuccess(ctx, "Chat deleted.")
	return nil
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(strings.TrimSpace(s), "\n", "\n  ")
}
