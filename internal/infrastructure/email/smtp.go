// Package email sends transactional mail over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/recovvo-inc/recovvo/internal/shared/config"
)

// SMTPMailer sends tenant onboarding mail. Callers treat send failures as
// non-fatal; tenant creation never rolls back on a mail error.
type SMTPMailer struct {
	cfg     *config.EmailConfig
	baseURL string
	dialer  *gomail.Dialer
}

func NewSMTPMailer(cfg *config.EmailConfig, baseURL string) *SMTPMailer {
	return &SMTPMailer{
		cfg:     cfg,
		baseURL: baseURL,
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *SMTPMailer) SendTenantOnboarding(ctx context.Context, adminEmail, tenantName, schemaID string) error {
	loginURL := fmt.Sprintf("%s/api/tenant/%s", s.baseURL, schemaID)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your %s workspace is ready</h2>
			<p>The organization <strong>%s</strong> has been provisioned.</p>
			<p>Your workspace identifier is <code>%s</code>.</p>
			<p>Sign in at <a href="%s">%s</a> to complete onboarding.</p>
		</body>
		</html>
	`, tenantName, tenantName, schemaID, loginURL, loginURL)

	plainBody := fmt.Sprintf(`Your %s workspace is ready.

Workspace identifier: %s
Sign in at %s to complete onboarding.
`, tenantName, schemaID, loginURL)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", adminEmail)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to Recovvo, %s", tenantName))
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send onboarding email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
