package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`       // One address or a comma-separated list
	Subject  string `json:"subject"`       // Subject of the email
	BodyHTML string `json:"body_html"`     // HTML body of the email
	Tag      string `json:"tag,omitempty"` // Optional
}

// Validate checks that every field a transport needs is present and that
// SendTo parses as an address list.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if _, err := ParseRecipients(p.SendTo); err != nil {
		return err
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// ParseRecipients splits a pre-joined destination field such as
// "a@example.com; Bob <b@example.com>" into addresses, keeping order and
// display names. Commas and semicolons both separate entries.
func ParseRecipients(sendTo string) ([]*mail.Address, error) {
	list, err := mail.ParseAddressList(NormalizeRecipients(sendTo))
	if err != nil {
		return nil, fmt.Errorf("%w: SendTo is not a valid address list: %v", ErrInvalidParams, err)
	}
	return list, nil
}

// NormalizeRecipients rewrites semicolon separators as commas.
// Semicolons inside quoted display names are left alone.
func NormalizeRecipients(sendTo string) string {
	var b strings.Builder
	b.Grow(len(sendTo))
	quoted, escaped := false, false
	for _, r := range sendTo {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quoted:
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ';' && !quoted:
			r = ','
		}
		b.WriteRune(r)
	}
	return b.String()
}
