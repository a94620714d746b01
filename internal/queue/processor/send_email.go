package processor

import (
	"context"
	"fmt"

	"github.com/hotel-booking/backend/internal/queue/task"
	"github.com/hotel-booking/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendEmailProcessor struct {
	workers *worker.Workers
}

func NewSendEmailProcessor(workers *worker.Workers) *sendEmailProcessor {
	return &sendEmailProcessor{
		workers: workers,
	}
}

func (p *sendEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	data, err := task.ParseSendEmail(t)
	if err != nil {
		return fmt.Errorf("process send email task: %v: %w", err, asynq.SkipRetry)
	}

	sender := p.workers.EmailSender

	switch data.Kind {
	case task.EmailWelcome:
		err = sender.SendWelcomeEmail(ctx, data.Email, data.Name)
	case task.EmailVerification:
		err = sender.SendVerificationEmail(ctx, data.Email, data.Code)
	case task.EmailPasswordReset:
		err = sender.SendPasswordResetEmail(ctx, data.Email, data.Code)
	default:
		return fmt.Errorf("unknown email kind %q: %w", data.Kind, asynq.SkipRetry)
	}

	if err != nil {
		return fmt.Errorf("send %s email failed: %w", data.Kind, err)
	}

	return nil
}
