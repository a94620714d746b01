package service

import (
	"context"
	"fmt"

	"github.com/hotel-booking/backend/internal/config"
	"github.com/hotel-booking/backend/internal/queue/task"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of asynq.Client the notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// EmailService hands account emails to the queue; the worker renders and sends them.
type EmailService struct {
	enqueuer Enqueuer
	maxRetry int
	enabled  bool
}

func NewEmailService(enqueuer Enqueuer, emailConfig config.EmailConfig, queueConfig config.Queue) *EmailService {
	return &EmailService{
		enqueuer: enqueuer,
		maxRetry: queueConfig.MaxRetry,
		enabled:  emailConfig.Enabled,
	}
}

func (s *EmailService) SendWelcome(ctx context.Context, email string, name string) error {
	return s.enqueue(ctx, task.SendEmail{Kind: task.EmailWelcome, Email: email, Name: name})
}

func (s *EmailService) SendVerificationCode(ctx context.Context, email string, code string) error {
	return s.enqueue(ctx, task.SendEmail{Kind: task.EmailVerification, Email: email, Code: code})
}

func (s *EmailService) SendPasswordResetCode(ctx context.Context, email string, code string) error {
	return s.enqueue(ctx, task.SendEmail{Kind: task.EmailPasswordReset, Email: email, Code: code})
}

func (s *EmailService) enqueue(ctx context.Context, data task.SendEmail) error {
	if !s.enabled {
		return nil
	}

	t, err := task.NewSendEmailTask(data, s.maxRetry)
	if err != nil {
		return fmt.Errorf("create send email task failed: %w", err)
	}

	if _, err := s.enqueuer.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue send email task failed: %w", err)
	}

	return nil
}
