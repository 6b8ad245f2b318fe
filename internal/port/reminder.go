package port

import (
	"context"

	"rentintel/internal/domain"
)

// ReminderSender delivers a rent-due reminder to the tenant of a unit.
type ReminderSender interface {
	SendRentReminder(ctx context.Context, unit *domain.Unit) error
}
