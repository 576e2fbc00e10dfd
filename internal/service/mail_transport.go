package service

import (
	"bytes"
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/gongmyung/app-showcase/internal/config"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/models"
)

// smtpTransport delivers submissions over authenticated SMTP.
type smtpTransport struct {
	cfg    config.Mail
	logger *logger.Logger
}

// NewSMTPTransport builds the production MailTransport from the mail
// configuration. The second return value reports whether the configuration is
// complete enough to actually deliver.
func NewSMTPTransport(cfg config.Mail, logger *logger.Logger) (MailTransport, bool) {
	if cfg.To == "" {
		cfg.To = cfg.Username
	}
	configured := cfg.Host != "" && cfg.Username != "" && cfg.Password != ""
	return &smtpTransport{cfg: cfg, logger: logger}, configured
}

func (t *smtpTransport) Deliver(ctx context.Context, subject, htmlBody, replyTo string, attachment *models.MailAttachment) error {
	msg := gomail.NewMsg()
	if err := msg.From(t.cfg.Username); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(t.cfg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	if err := msg.ReplyTo(replyTo); err != nil {
		return fmt.Errorf("invalid reply-to address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if attachment != nil {
		msg.AttachReadSeeker(attachment.Filename, bytes.NewReader(attachment.Content))
	}

	client, err := gomail.NewClient(t.cfg.Host,
		gomail.WithPort(t.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(t.cfg.Username),
		gomail.WithPassword(t.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client setup failed: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	return nil
}
