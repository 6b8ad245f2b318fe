package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentintel/internal/domain"
)

// MockReminderSender is a mock implementation of port.ReminderSender.
type MockReminderSender struct {
	mock.Mock
}

func (m *MockReminderSender) SendRentReminder(ctx context.Context, unit *domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}
