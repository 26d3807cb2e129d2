package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/relationest/internal/common"
)

// APIKeys are the user's own model provider keys, forwarded to the server
// with each chat request. Any of them may be empty.
type APIKeys struct {
	Gemini    string `json:"gemini"`
	OpenAI    string `json:"openai"`
	Anthropic string `json:"anthropic"`
}

// ChatSubmission is the body of POST /api/chat/submit-form.
type ChatSubmission struct {
	Name        string  `json:"name"`
	PartnerName string  `json:"partnerName"`
	Age         string  `json:"age"`
	Concern     string  `json:"concern"`
	Message     string  `json:"message"`
	APIKey      APIKeys `json:"apiKey"`
}

// Validate checks the fields the form marks as required.
func (s ChatSubmission) Validate() error {
	var missing []string
	if strings.TrimSpace(s.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(s.PartnerName) == "" {
		missing = append(missing, "partner name")
	}
	if strings.TrimSpace(s.Concern) == "" {
		missing = append(missing, "concern")
	}
	if strings.TrimSpace(s.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", common.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// ContinueChatRequest is the body of POST /api/chat/continue.
type ContinueChatRequest struct {
	ChatID          string  `json:"chatId"`
	FollowUpMessage string  `json:"followUpMessage"`
	APIKey          APIKeys `json:"apiKey"`
}

func (r ContinueChatRequest) Validate() error {
	if strings.TrimSpace(r.ChatID) == "" {
		return fmt.Errorf("%w: no chat to continue", common.ErrValidation)
	}
	if strings.TrimSpace(r.FollowUpMessage) == "" {
		return fmt.Errorf("%w: missing follow-up message", common.ErrValidation)
	}
	return nil
}

// ChatReply is the advisor's answer to a submission or follow-up.
type ChatReply struct {
	ChatID     string `json:"chatId,omitempty"`
	AIResponse string `json:"aiResponse"`
}

// Message is one turn of a stored chat.
type Message struct {
	FromUser bool   `json:"fromUser"`
	Text     string `json:"text"`
}

// Chat is a stored conversation as returned by /api/chat/chats.
type Chat struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name,omitempty"`
	PartnerName string    `json:"partnerName"`
	Concern     string    `json:"concern"`
	CreatedAt   time.Time `json:"createdAt"`
	Messages    []Message `json:"messages,omitempty"`
}

// Sender labels a message the way the history view shows it.
func (c Chat) Sender(m Message) string {
	if !m.FromUser {
		return "AI Advisor"
	}
	if c.Name != "" {
		return c.Name
	}
	return "User"
}

func (c Chat) String() string {
	return fmt.Sprintf("%s  %s  %s  %s", c.ID, c.CreatedAt.Format(time.DateOnly), c.PartnerName, c.Concern)
}
