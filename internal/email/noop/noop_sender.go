package noop

import (
	"context"
	"log"

	"rentintel/internal/domain"
	"rentintel/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op ReminderSender that logs reminders to stdout.
func NewNoopSender() port.ReminderSender {
	return &noopSender{}
}

func (s *noopSender) SendRentReminder(_ context.Context, unit *domain.Unit) error {
	log.Printf("[NOOP EMAIL] Rent reminder for %s (%s): %.0f RWF due day %d",
		unit.TenantName, unit.TenantEmail, unit.RentAmount, unit.DueDateDay)
	return nil
}
