package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"portfolioapi/internal/config"
)

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTP.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.SMTP.Host, m.cfg.SMTP.Port, m.cfg.SMTP.User, m.cfg.SMTP.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}

// ResetPasswordBody renders the password-reset email.
func ResetPasswordBody(userName, resetLink string) string {
	return fmt.Sprintf(`<body>
<h1>Dear, %s</h1>
<p>A password reset was requested for your admin account. The link below is valid for five minutes.</p>
<a href=%q>Reset your password</a>
</body>`, userName, resetLink)
}

// ContactResponseBody renders the admin's reply to a contact submission.
func ContactResponseBody(userName, mailBody string) string {
	today := time.Now().Format("02/01/2006")
	return fmt.Sprintf(`<body>
<h1>Dear, %s</h1>
<p>%s</p>
<p>%s</p>
</body>`, userName, mailBody, today)
}
