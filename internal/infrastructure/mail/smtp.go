package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/accountly/account-api/internal/core/ports"
)

// Config captures the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
}

// SMTPMailer delivers activation emails over SMTP.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

var _ ports.ActivationMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

// SendActivation emails the activation token to the given address. Any
// transport failure propagates to the caller.
func (m *SMTPMailer) SendActivation(ctx context.Context, to string, token string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject("Account Activation")
	msg.SetBodyString(gomail.TypeTextHTML, "Token id "+token)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send activation mail: %w", err)
	}
	return nil
}
