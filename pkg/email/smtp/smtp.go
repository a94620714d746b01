package smtp

import (
	"github.com/go-gomail/gomail"
	"github.com/pkg/errors"

	"github.com/hotel-booking/backend/pkg/email"
)

type SMTPSender struct {
	from string
	user string
	pass string
	host string
	port int
}

func NewSMTPSender(from, user, pass, host string, port int) (*SMTPSender, error) {
	if !email.IsEmailValid(from) {
		return nil, errors.New("invalid from email")
	}

	if user == "" {
		user = from
	}

	return &SMTPSender{from: from, user: user, pass: pass, host: host, port: port}, nil
}

func (s *SMTPSender) Send(input email.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", input.To)
	msg.SetHeader("Subject", input.Subject)
	msg.SetBody("text/html", input.Body)

	dialer := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to sent email via smtp")
	}

	return nil
}
