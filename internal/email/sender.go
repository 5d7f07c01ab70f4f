// Package email delivers magic-link sign-in emails through Resend.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"

	"github.com/surfstrength/surfstrength/internal/errors"
)

const appName = "Surf Strength"

// Sender delivers a magic sign-in link to an address.
type Sender interface {
	SendMagicLink(ctx context.Context, to, link string) error
}

// ResendSender sends through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) SendMagicLink(ctx context.Context, to, link string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: fmt.Sprintf("Sign in to %s", appName),
		Html:    magicLinkHTML(link),
		Text: fmt.Sprintf(
			"Sign in to %s\n\nClick this link to sign in: %s\n\n"+
				"This link will expire in 15 minutes.\n\n"+
				"If you didn't request this email, you can safely ignore it.",
			appName, link),
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return errors.Wrap(err, "send email", slog.String("to", to))
	}
	return nil
}

func magicLinkHTML(link string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #0ea5e9 0%%, #0284c7 100%%); padding: 40px 20px; text-align: center; border-radius: 12px 12px 0 0;">
    <h1 style="color: white; margin: 0; font-size: 28px;">&#127940; %[1]s</h1>
  </div>
  <div style="background: #f8fafc; padding: 40px 30px; border-radius: 0 0 12px 12px; border: 1px solid #e2e8f0; border-top: none;">
    <h2 style="color: #1e293b; margin-top: 0;">Sign in to access your workouts</h2>
    <p style="color: #64748b; margin-bottom: 30px;">
      Click the button below to securely sign in. This link will expire in 15 minutes.
    </p>
    <a href="%[2]s" style="display: inline-block; background: #0ea5e9; color: white; padding: 14px 32px; text-decoration: none; border-radius: 8px; font-weight: 600; font-size: 16px;">
      Sign In to %[1]s
    </a>
    <p style="color: #94a3b8; font-size: 14px; margin-top: 30px;">
      If you didn't request this email, you can safely ignore it.
    </p>
    <hr style="border: none; border-top: 1px solid #e2e8f0; margin: 30px 0;">
    <p style="color: #94a3b8; font-size: 12px; margin-bottom: 0;">
      If the button doesn't work, copy and paste this link into your browser:<br>
      <a href="%[2]s" style="color: #0ea5e9; word-break: break-all;">%[2]s</a>
    </p>
  </div>
</body>
</html>`, appName, link)
}

// LogSender writes the link to the log instead of sending it. Used in
// development and tests where no API key is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendMagicLink(ctx context.Context, to, link string) error {
	s.logger.LogAttrs(ctx, slog.LevelInfo, "magic link email",
		slog.String("to", to),
		slog.String("link", link))
	return nil
}
