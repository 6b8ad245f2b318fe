package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentintel/internal/domain"
	"rentintel/internal/service"
	"rentintel/mocks"
)

func validUnitInput() service.UnitInput {
	return service.UnitInput{
		Name:        "Apartment 1A",
		TenantName:  "Keza Marie",
		TenantPhone: "+250788123456",
		TenantEmail: "keza@example.com",
		RentAmount:  150000,
		DueDateDay:  5,
	}
}

func TestUnitCreate(t *testing.T) {
	unitRepo := new(mocks.MockUnitRepo)
	sender := new(mocks.MockReminderSender)
	unitRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Unit")).Return(nil)

	svc := service.NewUnitService(unitRepo, sender)
	unit, err := svc.Create(context.Background(), validUnitInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, unit.ID)
	assert.Equal(t, "Keza Marie", unit.TenantName)
	assert.True(t, unit.IsOccupied())
}

func TestUnitCreate_EmptyTenantBecomesVacant(t *testing.T) {
	unitRepo := new(mocks.MockUnitRepo)
	sender := new(mocks.MockReminderSender)
	unitRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	input := validUnitInput()
	input.TenantName = ""

	svc := service.NewUnitService(unitRepo, sender)
	unit, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.VacancySentinel, unit.TenantName)
	assert.False(t, unit.IsOccupied())
}

func TestUnitCreate_Validation(t *testing.T) {
	unitRepo := new(mocks.MockUnitRepo)
	sender := new(mocks.MockReminderSender)
	svc := service.NewUnitService(unitRepo, sender)

	tests := []struct {
		name   string
		mutate func(*service.UnitInput)
	}{
		{"empty name", func(in *service.UnitInput) { in.Name = "" }},
		{"zero rent", func(in *service.UnitInput) { in.RentAmount = 0 }},
		{"negative rent", func(in *service.UnitInput) { in.RentAmount = -100 }},
		{"due day zero", func(in *service.UnitInput) { in.DueDateDay = 0 }},
		{"due day 32", func(in *service.UnitInput) { in.DueDateDay = 32 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validUnitInput()
			tt.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrInvalidUnit)
		})
	}
	unitRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnitVacate(t *testing.T) {
	unitRepo := new(mocks.MockUnitRepo)
	sender := new(mocks.MockReminderSender)

	id := uuid.New()
	unitRepo.On("GetByID", mock.Anything, id).Return(&domain.Unit{
		ID:          id,
		Name:        "Apartment 1A",
		TenantName:  "Keza Marie",
		TenantPhone: "+250788123456",
		TenantEmail: "keza@example.com",
		RentAmount:  150000,
		DueDateDay:  5,
	}, nil)
	unitRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Unit")).Return(nil)

	svc := service.NewUnitService(unitRepo, sender)
	unit, err := svc.Vacate(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, domain.VacancySentinel, unit.TenantName)
	assert.Empty(t, unit.TenantPhone)
	assert.Empty(t, unit.TenantEmail)
	// The unit itself survives the move-out.
	assert.Equal(t, "Apartment 1A", unit.Name)
	assert.Equal(t, 150000.0, unit.RentAmount)
}

func TestUnitRemind(t *testing.T) {
	unitRepo := new(mocks.MockUnitRepo)
	sender := new(mocks.MockReminderSender)

	id := uuid.New()
	occupied := &domain.Unit{
		ID:          id,
		Name:        "Apartment 1A",
		TenantName:  "Keza Marie",
		TenantEmail: "keza@example.com",
	}
	unitRepo.On("GetByID", mock.Anything, id).Return(occupied, nil)
	sender.On("SendRentReminder", mock.Anything, occupied).Return(nil)

	svc := service.NewUnitService(unitRepo, sender)
	err := svc.Remind(context.Background(), id)

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestUnitRemind_VacantUnit(t *testing.T) {
	unitRepo := new(mocks.MockUnitRepo)
	sender := new(mocks.MockReminderSender)

	id := uuid.New()
	unitRepo.On("GetByID", mock.Anything, id).Return(&domain.Unit{
		ID:         id,
		TenantName: domain.VacancySentinel,
	}, nil)

	svc := service.NewUnitService(unitRepo, sender)
	err := svc.Remind(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrUnitVacant)
	sender.AssertNotCalled(t, "SendRentReminder", mock.Anything, mock.Anything)
}

func TestUnitRemind_NoEmail(t *testing.T) {
	unitRepo := new(mocks.MockUnitRepo)
	sender := new(mocks.MockReminderSender)

	id := uuid.New()
	unitRepo.On("GetByID", mock.Anything, id).Return(&domain.Unit{
		ID:         id,
		TenantName: "Keza Marie",
	}, nil)

	svc := service.NewUnitService(unitRepo, sender)
	err := svc.Remind(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrNoTenantContact)
}
