package postmark

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/roundup/core/email"
)

// Config holds Postmark credentials and sender identity.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SMTP_USER"`
	SenderName           string `env:"SMTP_SENDER_NAME" envDefault:"AI Weekly Roundup"`
	ReplyTo              string `env:"POSTMARK_REPLY_TO"`
}

// API is the subset of the Postmark client used here.
type API interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// Client implements email.EmailSender using Postmark's transactional API.
type Client struct {
	api    API
	config Config
}

// Option configures the Client.
type Option func(*Client)

// WithAPI replaces the Postmark API client. Used in tests.
func WithAPI(api API) Option {
	return func(c *Client) {
		c.api = api
	}
}

// New creates a Postmark-backed email sender.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", email.ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", email.ErrInvalidConfig)
	}
	if _, err := mail.ParseAddress(cfg.SenderEmail); err != nil {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	}
	if cfg.ReplyTo != "" {
		if _, err := mail.ParseAddress(cfg.ReplyTo); err != nil {
			return nil, fmt.Errorf("%w: ReplyTo must be a valid email address", email.ErrInvalidConfig)
		}
	}

	c := &Client{
		api:    postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNewClient creates a Postmark client that panics on invalid config.
func MustNewClient(cfg Config, opts ...Option) *Client {
	client, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements EmailSender.
// Postmark takes a comma-separated To value, so semicolons in SendTo become commas.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	from := c.config.SenderEmail
	if c.config.SenderName != "" {
		from = (&mail.Address{Name: c.config.SenderName, Address: c.config.SenderEmail}).String()
	}

	resp, err := c.api.SendEmail(ctx, postmark.Email{
		From:     from,
		ReplyTo:  c.config.ReplyTo,
		To:       email.NormalizeRecipients(params.SendTo),
		Subject:  params.Subject,
		Tag:      params.Tag,
		HTMLBody: params.BodyHTML,
	})
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			email.ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
