package email

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"

	"clubcms/internal/shared/config"
)

// ContactMessage is one submission from the public contact form. All fields
// are untrusted input.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Sender delivers contact-form messages to the club address.
type Sender interface {
	SendContactMessage(msg ContactMessage) error
}

type SMTPEmailService struct {
	config config.EmailConfig
	dialer *gomail.Dialer
	policy *bluemonday.Policy
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		// strict policy strips every tag before the fields are interpolated
		// into the HTML body
		policy: bluemonday.StrictPolicy(),
	}
}

func (s *SMTPEmailService) SendContactMessage(msg ContactMessage) error {
	plainBody, htmlBody, subject := s.renderBodies(msg)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", s.config.ContactTo)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", fmt.Sprintf("[Club Website] %s", subject))
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	return s.send(m)
}

// renderBodies sanitizes every visitor-supplied field before interpolation;
// the address validation still admits markup characters around the @.
func (s *SMTPEmailService) renderBodies(msg ContactMessage) (plain, html, subject string) {
	name := s.policy.Sanitize(msg.Name)
	email := s.policy.Sanitize(msg.Email)
	subject = s.policy.Sanitize(msg.Subject)
	body := s.policy.Sanitize(msg.Message)

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>New message from the club website</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Subject:</strong> %s</p>
			<hr>
			<h3>Message:</h3>
			<p>%s</p>
			<hr>
			<p><em>Sent from the website contact form</em></p>
		</body>
		</html>
	`, name, email, subject, strings.ReplaceAll(body, "\n", "<br>"))

	plain = fmt.Sprintf(`New message from the club website

Name: %s
Email: %s
Subject: %s

%s
`, name, email, subject, body)

	return plain, html, subject
}

func (s *SMTPEmailService) send(m *gomail.Message) error {
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}
