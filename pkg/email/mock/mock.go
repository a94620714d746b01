package mock_email

import (
	"github.com/hotel-booking/backend/pkg/email"

	"github.com/stretchr/testify/mock"
)

// EmailSender is a testify mock of email.Sender.
type EmailSender struct {
	mock.Mock
}

func (m *EmailSender) Send(input email.SendEmailInput) error {
	return m.Called(input).Error(0)
}

// Recipients lists the addresses of every Send call in order.
func (m *EmailSender) Recipients() []string {
	var to []string
	for _, call := range m.Calls {
		if call.Method != "Send" {
			continue
		}
		if input, ok := call.Arguments.Get(0).(email.SendEmailInput); ok {
			to = append(to, input.To)
		}
	}
	return to
}
