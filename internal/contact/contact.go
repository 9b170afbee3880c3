package contact

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Message is a contact form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Subscription is a newsletter signup.
type Subscription struct {
	Email string `json:"email"`
}

// Validate returns field-level errors; an empty map means the message is
// well formed.
func (m Message) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = "El nombre es obligatorio"
	}
	if strings.TrimSpace(m.Email) == "" {
		errs["email"] = "El email es obligatorio"
	} else if !emailPattern.MatchString(m.Email) {
		errs["email"] = "El email no es válido"
	}
	if m.Subject == "" {
		errs["subject"] = "Por favor, selecciona un asunto"
	}
	if strings.TrimSpace(m.Message) == "" {
		errs["message"] = "El mensaje es obligatorio"
	}
	return errs
}

func (s Subscription) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(s.Email) == "" {
		errs["email"] = "El email es obligatorio"
	} else if !emailPattern.MatchString(s.Email) {
		errs["email"] = "El email no es válido"
	}
	return errs
}
