package services

import (
	"fmt"
	"log"
	"strconv"

	"github.com/portfolio-backend/config"
	"github.com/portfolio-backend/models"
	"gopkg.in/gomail.v2"
)

// Mailer sends the new-message notification email over SMTP. It is optional:
// NewMailerFromEnv returns nil when SMTP is not configured and callers treat
// a nil Mailer as "notifications disabled".
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
	to   string
}

// NewMailerFromEnv builds a Mailer from SMTP_* environment variables,
// or returns nil when SMTP_HOST is unset.
func NewMailerFromEnv() *Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}

	port, err := strconv.Atoi(config.GetEnv("SMTP_PORT", "587"))
	if err != nil {
		log.Printf("Warning: invalid SMTP_PORT, using 587")
		port = 587
	}

	return &Mailer{
		host: host,
		port: port,
		user: config.GetEnv("SMTP_USER", ""),
		pass: config.GetEnv("SMTP_PASSWORD", ""),
		from: config.GetEnv("SMTP_FROM", config.GetEnv("SMTP_USER", "")),
		to:   config.GetEnv("CONTACT_NOTIFY_EMAIL", config.GetEnv("ADMIN_EMAIL", "")),
	}
}

// NotifyNewMessage emails the admin about an inbound contact message. The
// send runs in the background so a slow or unreachable SMTP host never
// stalls the contact request. Best effort: failures are logged and swallowed.
func (m *Mailer) NotifyNewMessage(message models.Message) {
	if m.to == "" {
		return
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.to)
	mail.SetHeader("Subject", fmt.Sprintf("New contact message: %s", message.Subject))
	mail.SetHeader("Reply-To", message.Email)
	mail.SetBody("text/plain", fmt.Sprintf(
		"From: %s <%s>\n\n%s", message.Name, message.Email, message.Message))

	go func() {
		dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
		if err := dialer.DialAndSend(mail); err != nil {
			log.Printf("Warning: failed to send contact notification: %v", err)
		}
	}()
}
