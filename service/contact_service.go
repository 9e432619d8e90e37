package service

import (
	"fmt"
	"portfolio-api/logger"
	"portfolio-api/model"
	"portfolio-api/repository"

	"github.com/wneessen/go-mail"
)

// IMailer defines the contract for the outbound email relay.
type IMailer interface {
	SendContactNotification(name, email, message string) error
}

// SMTPMailer implements IMailer over SMTP.
type SMTPMailer struct {
	host      string
	port      int
	username  string
	password  string
	recipient string
}

func NewSMTPMailer(host string, port int, username, password, recipient string) *SMTPMailer {
	return &SMTPMailer{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		recipient: recipient,
	}
}

func (m *SMTPMailer) SendContactNotification(name, email, message string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(name, email); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(m.recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(fmt.Sprintf("New Contact Message from %s", name))
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(
		`<h3>New Contact Form Submission</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`, name, email, message))

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// ContactService persists contact-form submissions and relays them by email.
type ContactService struct {
	contactRepo repository.IContactRepository
	mailer      IMailer
}

func NewContactService(contactRepo repository.IContactRepository, mailer IMailer) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		mailer:      mailer,
	}
}

// SendMessage saves the message first, then relays it. A relay failure is
// surfaced to the caller even though the row is already persisted.
func (s *ContactService) SendMessage(req *model.ContactRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.contactRepo.CreateMessage(msg); err != nil {
		return nil, err
	}

	if err := s.mailer.SendContactNotification(req.Name, req.Email, req.Message); err != nil {
		logger.Log.WithError(err).Error("Failed to relay contact message")
		return nil, err
	}

	logger.Log.WithField("contact_id", msg.ID).Info("Contact message relayed")
	return msg, nil
}
