package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPDialer delivers prepared messages. *mail.Client satisfies it.
type SMTPDialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPOption configures the SMTP sender.
type SMTPOption func(*smtpClient)

// WithSMTPDialer replaces the network client. Useful for testing.
func WithSMTPDialer(d SMTPDialer) SMTPOption {
	return func(c *smtpClient) {
		c.dialer = d
	}
}

type smtpClient struct {
	dialer SMTPDialer
	config SMTPConfig
}

// NewSMTPClient creates a sender that delivers through an authenticated
// SMTP sandbox. Missing credentials are reported before any connection
// is attempted.
func NewSMTPClient(cfg SMTPConfig, opts ...SMTPOption) (EmailSender, error) {
	if cfg.User == "" || cfg.Pass == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("%w: Port must be positive", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.From) {
		return nil, fmt.Errorf("%w: From must be a valid email address", ErrInvalidConfig)
	}

	c := &smtpClient{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.dialer == nil {
		client, err := mail.NewClient(cfg.Host,
			mail.WithPort(cfg.Port),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Pass),
			mail.WithTLSPolicy(mail.TLSOpportunistic),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		c.dialer = client
	}

	return c, nil
}

// MustNewSMTPClient creates an SMTP sender that panics on invalid config.
func MustNewSMTPClient(cfg SMTPConfig, opts ...SMTPOption) EmailSender {
	client, err := NewSMTPClient(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail delivers one HTML message to params.SendTo.
func (c *smtpClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(c.config.FromName, c.config.From); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if err := msg.To(params.SendTo); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	msg.Subject(params.Subject)
	msg.SetBodyString(mail.TypeTextHTML, params.BodyHTML)
	if params.Tag != "" {
		msg.SetGenHeader("X-Template", params.Tag)
	}

	if err := c.dialer.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
