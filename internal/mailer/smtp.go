// Package mailer delivers backup messages over SMTP.
package mailer

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/platform/config"
)

// SMTPMailer sends messages through the SMTP server named in configuration.
type SMTPMailer struct {
	cfg *config.Config
}

// NewSMTPMailer creates the backup mailer.
func NewSMTPMailer(cfg *config.Config) portssvc.BackupMailer {
	return &SMTPMailer{cfg: cfg}
}

var _ portssvc.BackupMailer = (*SMTPMailer)(nil)

// SendWithAttachments delivers an HTML message with the given files attached.
func (m *SMTPMailer) SendWithAttachments(ctx context.Context, to, subject, htmlBody string, attachments []string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", m.cfg.SMTPFrom, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)
	for _, path := range attachments {
		msg.AttachFile(path)
	}

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.SMTPUser),
		gomail.WithPassword(m.cfg.SMTPPassword),
	}
	if m.cfg.SMTPUseTLS {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(m.cfg.SMTPHost, opts...)
	if err != nil {
		return fmt.Errorf("failed to build SMTP client: %w", err)
	}
	defer client.Close()

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
