package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	SendEmailTaskName  = "sendEmailTask"
	SendEmailQueueName = "sendEmailQueue"
)

type EmailKind string

const (
	EmailWelcome       EmailKind = "welcome"
	EmailVerification  EmailKind = "verification"
	EmailPasswordReset EmailKind = "password_reset"
)

type SendEmail struct {
	Kind  EmailKind `json:"kind"`
	Email string    `json:"email"`
	Name  string    `json:"name,omitempty"`
	Code  string    `json:"code,omitempty"`
}

func NewSendEmailTask(data SendEmail, maxRetry int) (*asynq.Task, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendEmailTaskName,
		payload,
		asynq.MaxRetry(maxRetry),
		asynq.Queue(SendEmailQueueName),
	), nil
}

func ParseSendEmail(t *asynq.Task) (SendEmail, error) {
	var data SendEmail
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return SendEmail{}, fmt.Errorf("json data unmarshal failed: %w", err)
	}
	return data, nil
}
