package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"rentintel/internal/domain"
	"rentintel/internal/port"
)

// UnitInput is the DTO for creating or editing a unit.
type UnitInput struct {
	Name        string  `json:"name" binding:"required"`
	TenantName  string  `json:"tenantName"`
	TenantPhone string  `json:"tenantPhone"`
	TenantEmail string  `json:"tenantEmail"`
	RentAmount  float64 `json:"rentAmount" binding:"required"`
	DueDateDay  int     `json:"dueDateDay" binding:"required"`
}

// UnitService owns the unit roster lifecycle: add, edit, move-out, delete.
type UnitService interface {
	Create(ctx context.Context, input UnitInput) (*domain.Unit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
	Update(ctx context.Context, id uuid.UUID, input UnitInput) (*domain.Unit, error)
	// Vacate ends the lease: tenant fields are cleared but the unit stays.
	Vacate(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Unit, error)
	// Remind sends a rent-due reminder to the unit's tenant.
	Remind(ctx context.Context, id uuid.UUID) error
}

type unitService struct {
	unitRepo port.UnitRepository
	sender   port.ReminderSender
}

// NewUnitService creates a new UnitService implementation.
func NewUnitService(unitRepo port.UnitRepository, sender port.ReminderSender) UnitService {
	return &unitService{unitRepo: unitRepo, sender: sender}
}

func validateUnitInput(input *UnitInput) error {
	if input.Name == "" || input.RentAmount <= 0 || input.DueDateDay < 1 || input.DueDateDay > 31 {
		return domain.ErrInvalidUnit
	}
	return nil
}

func (s *unitService) Create(ctx context.Context, input UnitInput) (*domain.Unit, error) {
	if err := validateUnitInput(&input); err != nil {
		return nil, err
	}

	unit := &domain.Unit{
		ID:          uuid.New(),
		Name:        input.Name,
		TenantName:  input.TenantName,
		TenantPhone: input.TenantPhone,
		TenantEmail: input.TenantEmail,
		RentAmount:  input.RentAmount,
		DueDateDay:  input.DueDateDay,
	}
	if unit.TenantName == "" {
		unit.TenantName = domain.VacancySentinel
	}

	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("unit.Create: %w", err)
	}
	return unit, nil
}

func (s *unitService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	return s.unitRepo.GetByID(ctx, id)
}

func (s *unitService) Update(ctx context.Context, id uuid.UUID, input UnitInput) (*domain.Unit, error) {
	if err := validateUnitInput(&input); err != nil {
		return nil, err
	}

	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unit.Name = input.Name
	unit.TenantName = input.TenantName
	unit.TenantPhone = input.TenantPhone
	unit.TenantEmail = input.TenantEmail
	unit.RentAmount = input.RentAmount
	unit.DueDateDay = input.DueDateDay
	if unit.TenantName == "" {
		unit.TenantName = domain.VacancySentinel
	}

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, fmt.Errorf("unit.Update: %w", err)
	}
	return unit, nil
}

func (s *unitService) Vacate(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unit.TenantName = domain.VacancySentinel
	unit.TenantPhone = ""
	unit.TenantEmail = ""

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, fmt.Errorf("unit.Vacate: %w", err)
	}
	return unit, nil
}

func (s *unitService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.unitRepo.Delete(ctx, id)
}

func (s *unitService) List(ctx context.Context) ([]domain.Unit, error) {
	return s.unitRepo.List(ctx)
}

func (s *unitService) Remind(ctx context.Context, id uuid.UUID) error {
	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !unit.IsOccupied() {
		return domain.ErrUnitVacant
	}
	if unit.TenantEmail == "" {
		return domain.ErrNoTenantContact
	}
	if err := s.sender.SendRentReminder(ctx, unit); err != nil {
		return fmt.Errorf("unit.Remind: %w", err)
	}
	return nil
}
