package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/dmitrymomot/roundup/core/email"
)

// Dialer opens a session, sends the messages and closes the session.
// *gomail.Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Client implements the EmailSender interface on top of gomail.
// Each SendEmail call opens one session and sends one message.
type Client struct {
	config Config
	dialer Dialer
}

// Option configures the Client.
type Option func(*Client)

// WithDialer replaces the gomail dialer. Used in tests.
func WithDialer(d Dialer) Option {
	return func(c *Client) {
		c.dialer = d
	}
}

// WithTLSConfig sets the TLS configuration used for both implicit TLS and STARTTLS.
// It has no effect when combined with WithDialer.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *Client) {
		if d, ok := c.dialer.(*gomail.Dialer); ok {
			d.TLSConfig = cfg
		}
	}
}

// New creates an SMTP-backed email sender.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", email.ErrInvalidConfig)
	}
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("%w: Port must be a number between 1 and 65535, got %q", email.ErrInvalidConfig, cfg.Port)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: Username is required", email.ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", email.ErrInvalidConfig)
	}

	d := gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password)
	d.SSL = cfg.ImplicitTLS()

	c := &Client{config: cfg, dialer: d}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNewClient creates an SMTP client that panics on invalid config.
func MustNewClient(cfg Config, opts ...Option) *Client {
	client, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements EmailSender.
// The From header uses SMTP_USER as the address and SenderName as the display name.
// Every SendTo entry lands on the To header with its display name kept.
// gomail has no context support, so ctx is only checked before dialing.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}

	if err := params.Validate(); err != nil {
		return err
	}

	recipients, err := email.ParseRecipients(params.SendTo)
	if err != nil {
		return err
	}

	if err := c.dialer.DialAndSend(c.buildMessage(recipients, params)); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	return nil
}

func (c *Client) buildMessage(recipients []*mail.Address, params email.SendEmailParams) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", c.config.Username, c.config.SenderName)

	to := make([]string, 0, len(recipients))
	for _, a := range recipients {
		to = append(to, msg.FormatAddress(a.Address, a.Name))
	}
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", params.Subject)
	msg.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), messageIDDomain(c.config)))
	if params.Tag != "" {
		msg.SetHeader("X-Tag", params.Tag)
	}
	msg.SetBody("text/html", params.BodyHTML)
	return msg
}

// messageIDDomain prefers the sender's mail domain and falls back to the server host.
func messageIDDomain(cfg Config) string {
	if _, domain, ok := strings.Cut(cfg.Username, "@"); ok && domain != "" {
		return domain
	}
	return cfg.Host
}
