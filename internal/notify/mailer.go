package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"

	"github.com/vitalis-app/vitalis-bookings/pkg/config"
	"github.com/vitalis-app/vitalis-bookings/pkg/logger"
)

type Mailer interface {
	SendBookingConfirmed(toEmail, businessName, serviceName, date, timeSlot string) error
	SendBookingCancelled(toEmail, businessName, date, timeSlot string) error
}

// NewMailer picks the mailer for the current configuration: dev logger,
// MailerSend when a key is set, SMTP otherwise.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.Email.DevMode {
		return NewDevMailer()
	}
	if cfg.Email.MailerSendKey != "" {
		return NewMailerSend(cfg.Email.MailerSendKey, "Vitalis", cfg.Email.SMTPFrom)
	}
	return NewSMTPMailer(cfg.Email)
}

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendBookingConfirmed(toEmail, businessName, serviceName, date, timeSlot string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := fmt.Sprintf("Booking confirmed at %s", businessName)
	html := fmt.Sprintf(`
		<h2>Your booking is confirmed!</h2>
		<p><strong>%s</strong> — %s</p>
		<p>Date: <strong>%s</strong> at <strong>%s</strong></p>
		<p>See you there!</p>
	`, businessName, serviceName, date, timeSlot)
	text := fmt.Sprintf("Your booking at %s (%s) is confirmed for %s at %s.", businessName, serviceName, date, timeSlot)

	return m.sendEmail(toEmail, subject, text, html)
}

func (m *MailerSendClient) SendBookingCancelled(toEmail, businessName, date, timeSlot string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := fmt.Sprintf("Booking cancelled at %s", businessName)
	html := fmt.Sprintf(`
		<h2>Your booking was cancelled</h2>
		<p><strong>%s</strong>, %s at %s</p>
		<p>You can book a new appointment any time.</p>
	`, businessName, date, timeSlot)
	text := fmt.Sprintf("Your booking at %s for %s at %s was cancelled.", businessName, date, timeSlot)

	return m.sendEmail(toEmail, subject, text, html)
}

func (m *MailerSendClient) sendEmail(toEmail, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(m.from)
	message.SetRecipients([]mailersend.Recipient{{Email: toEmail}})
	message.SetSubject(subject)
	message.SetText(text)
	message.SetHTML(html)

	if _, err := m.client.Email.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send email via MailerSend: %w", err)
	}
	return nil
}

type SMTPMailer struct {
	cfg config.EmailConfig
}

func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (s *SMTPMailer) SendBookingConfirmed(toEmail, businessName, serviceName, date, timeSlot string) error {
	subject := fmt.Sprintf("Booking confirmed at %s", businessName)
	body := fmt.Sprintf("Your booking at %s (%s) is confirmed for %s at %s.", businessName, serviceName, date, timeSlot)
	return s.send(toEmail, subject, body)
}

func (s *SMTPMailer) SendBookingCancelled(toEmail, businessName, date, timeSlot string) error {
	subject := fmt.Sprintf("Booking cancelled at %s", businessName)
	body := fmt.Sprintf("Your booking at %s for %s at %s was cancelled.", businessName, date, timeSlot)
	return s.send(toEmail, subject, body)
}

func (s *SMTPMailer) send(toEmail, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.SMTPFrom,
		"To: " + toEmail,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, s.cfg.SMTPFrom, []string{toEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}

type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendBookingConfirmed(toEmail, businessName, serviceName, date, timeSlot string) error {
	logger.Info("📧 [DEV MAIL] Booking Confirmed",
		"to", toEmail,
		"business", businessName,
		"service", serviceName,
		"date", date,
		"time_slot", timeSlot,
	)
	return nil
}

func (d *DevMailer) SendBookingCancelled(toEmail, businessName, date, timeSlot string) error {
	logger.Info("📧 [DEV MAIL] Booking Cancelled",
		"to", toEmail,
		"business", businessName,
		"date", date,
		"time_slot", timeSlot,
	)
	return nil
}
