package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/BruksfildServices01/trainer-marketplace/internal/config"
)

type Sender interface {
	Send(to, subject, htmlBody string) error
}

type SMTP struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host string, port int, user, pass, from string) *SMTP {
	if from == "" {
		from = user
	}
	return &SMTP{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (s *SMTP) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}

// Log only prints messages; it stands in when SMTP is not configured.
type Log struct{}

func (Log) Send(to, subject, _ string) error {
	log.Printf("mail_skipped to=%s subject=%q reason=smtp_not_configured", to, subject)
	return nil
}

func New(cfg *config.Config) Sender {
	if !cfg.MailEnabled() {
		return Log{}
	}
	return NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
}

// PasswordReset renders the reset mail for link.
func PasswordReset(name, link string) (subject, body string) {
	subject = "Reset your password"
	body = fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We received a request to reset your password.</p>
		<p><a href="%s">Choose a new password</a></p>
		<p>The link expires in one hour. If you did not ask for this, ignore this email.</p>
	`, name, link)
	return subject, body
}
