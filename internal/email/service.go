package email

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

// Sender delivers generated reports by email.
type Sender interface {
	SendReport(ctx context.Context, to, filename string, pdf []byte) error
}

type Service struct {
	dialer *gomail.Dialer
	from   string
}

func NewService(host string, port int, user, password, from string) *Service {
	return &Service{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

const reportBody = "Your Cardio70 cardiovascular risk report is attached.\n\n" +
	"This report is generated by an AI model for educational and informational " +
	"purposes only and is not a substitute for professional medical advice."

func (s *Service) SendReport(ctx context.Context, to, filename string, pdf []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your Cardio70 Risk Report")
	m.SetBody("text/plain", reportBody)
	m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	return nil
}
