package worker

import (
	"context"
	"fmt"

	"github.com/hotel-booking/backend/internal/config"
	emailProvider "github.com/hotel-booking/backend/pkg/email"
)

const (
	welcomeSubject       = "Welcome to Hotel Booking"
	verificationSubject  = "Verify your account"
	passwordResetSubject = "Password reset code"
)

type emailSender struct {
	sender    emailProvider.Sender
	templates *emailProvider.Templates
	config    config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender:    sender,
		templates: emailProvider.NewTemplates(config.TemplatesDir),
		config:    config,
	}
}

type welcomeEmailInput struct {
	Name  string
	Email string
}

type codeEmailInput struct {
	Email string
	Code  string
}

func (s *emailSender) SendWelcomeEmail(ctx context.Context, email string, name string) error {
	return s.send(email, welcomeSubject, s.config.Templates.Welcome, welcomeEmailInput{Name: name, Email: email})
}

func (s *emailSender) SendVerificationEmail(ctx context.Context, email string, code string) error {
	return s.send(email, verificationSubject, s.config.Templates.Verification, codeEmailInput{Email: email, Code: code})
}

func (s *emailSender) SendPasswordResetEmail(ctx context.Context, email string, code string) error {
	return s.send(email, passwordResetSubject, s.config.Templates.PasswordReset, codeEmailInput{Email: email, Code: code})
}

func (s *emailSender) send(to string, subject string, templateFile string, data interface{}) error {
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: to}

	if err := sendInput.Render(s.templates, templateFile, data); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := sendInput.Validate(); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
