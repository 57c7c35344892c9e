package email

import (
	"fmt"
	"net/smtp"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/config"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
)

// Service sends transactional notifications over SMTP. All sends are
// best effort; callers decide what to do with a failure.
type Service struct {
	host     string
	port     string
	user     string
	password string
	from     string
	to       string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		to:       cfg.SalesInboxTo,
	}
}

func (e *Service) NotifyDemoRequest(req *models.DemoRequest) error {
	if e.host == "" || e.to == "" {
		return fmt.Errorf("smtp not configured")
	}

	subject := fmt.Sprintf("New demo request from %s", req.Company)
	body := fmt.Sprintf(`A new demo request was submitted.

Name:    %s
Email:   %s
Company: %s
Phone:   %s

Message:
%s
`, req.Name, req.Email, req.Company, req.Phone, req.Message)

	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", e.from, e.to, subject, body)

	auth := smtp.PlainAuth("", e.user, e.password, e.host)
	addr := fmt.Sprintf("%s:%s", e.host, e.port)

	if err := smtp.SendMail(addr, auth, e.from, []string{e.to}, []byte(message)); err != nil {
		return fmt.Errorf("send demo request notification: %w", err)
	}

	return nil
}
