package service

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/models"
)

// inquiryTypeEvents marks event/partnership inquiries; they are the only
// submissions allowed to omit the message body, and the only ones requiring
// marketing consent.
const inquiryTypeEvents = "events"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MailTransport delivers one prepared mail. The production implementation
// speaks SMTP; tests substitute their own.
type MailTransport interface {
	Deliver(ctx context.Context, subject, htmlBody, replyTo string, attachment *models.MailAttachment) error
}

type mailService struct {
	transport  MailTransport
	configured bool
	logger     *logger.Logger
}

// NewMailService wraps transport with the submission validation rules.
// configured=false makes every send fail with ErrMailNotConfigured, which the
// HTTP layer reports as a server-side problem rather than a user error.
func NewMailService(transport MailTransport, configured bool, logger *logger.Logger) MailService {
	return &mailService{transport: transport, configured: configured, logger: logger}
}

// Send validates the submission and forwards it. Validation order is fixed:
// required contact fields, then the message rule, then events consent, then
// email syntax.
func (m *mailService) Send(ctx context.Context, message models.MailMessage) error {
	log := logger.FromContext(ctx)

	if message.Name == "" || message.Email == "" || message.Subject == "" {
		return ErrValidationContactRequired
	}
	if message.Message == "" && message.Type != inquiryTypeEvents {
		return ErrValidationMessageRequired
	}
	if message.Type == inquiryTypeEvents && !message.AgreeToMarketing {
		return ErrValidationConsentRequired
	}
	if !emailPattern.MatchString(message.Email) {
		return ErrValidationEmailInvalid
	}

	if !m.configured {
		log.Error().Msg("mail submission received but SMTP is not configured")
		return ErrMailNotConfigured
	}

	subject := fmt.Sprintf("[App Showcase] %s", message.Subject)
	if err := m.transport.Deliver(ctx, subject, composeBody(message), message.Email, message.Attachment); err != nil {
		log.Err(err).Msg("mail delivery failed")
		return fmt.Errorf("mail delivery failed: %w", err)
	}

	log.Info().Str("type", message.Type).Msg("mail submission forwarded")
	return nil
}

// composeBody renders the HTML mail body: inquiry fields, optional consent
// line, message, attachment note, and the submission footer with time and
// client IP.
func composeBody(message models.MailMessage) string {
	var b strings.Builder

	b.WriteString("<h2>New inquiry</h2>")
	writeRow(&b, "Type", message.Type)
	writeRow(&b, "Name", message.Name)
	writeRow(&b, "Email", message.Email)
	writeRow(&b, "Subject", message.Subject)

	if message.Type == inquiryTypeEvents {
		writeRow(&b, "Marketing consent", "yes")
	}

	if message.Message != "" {
		b.WriteString("<h3>Message</h3><p>")
		b.WriteString(html.EscapeString(message.Message))
		b.WriteString("</p>")
	}

	if message.Attachment != nil {
		writeRow(&b, "Attachment", message.Attachment.Filename)
	}

	b.WriteString("<hr><p><small>Submitted at ")
	b.WriteString(time.Now().Format(time.RFC3339))
	if message.ClientIP != "" {
		b.WriteString(" from ")
		b.WriteString(html.EscapeString(message.ClientIP))
	}
	b.WriteString("</small></p>")

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString("<p><b>")
	b.WriteString(label)
	b.WriteString(":</b> ")
	b.WriteString(html.EscapeString(value))
	b.WriteString("</p>")
}
