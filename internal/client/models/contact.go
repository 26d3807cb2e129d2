package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/relationest/internal/common"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactMessage is the body of POST /api/contact/submit.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate requires every field and a plausible email address.
func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Message) == "" {
		return fmt.Errorf("%w: please fill in all fields", common.ErrValidation)
	}
	if !ValidEmail(m.Email) {
		return fmt.Errorf("%w: please enter a valid email address", common.ErrValidation)
	}
	return nil
}

// ContactResponse is the server's answer to a contact message.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
