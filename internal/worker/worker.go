package worker

import (
	"context"

	"github.com/hotel-booking/backend/internal/config"
	emailProvider "github.com/hotel-booking/backend/pkg/email"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EmailSender interface {
	SendWelcomeEmail(ctx context.Context, email string, name string) error
	SendVerificationEmail(ctx context.Context, email string, code string) error
	SendPasswordResetEmail(ctx context.Context, email string, code string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email),
	}
}
