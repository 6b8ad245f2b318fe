package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"rentintel/internal/domain"
	"rentintel/internal/service"
)

// MockRecordService is a mock implementation of service.RecordService.
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) Confirm(ctx context.Context, draft domain.RecordDraft) (*domain.RentRecord, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentRecord), args.Error(1)
}

func (m *MockRecordService) CollectCash(ctx context.Context, unitID uuid.UUID) (*domain.RentRecord, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentRecord), args.Error(1)
}

func (m *MockRecordService) List(ctx context.Context) ([]domain.RentRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentRecord), args.Error(1)
}

func (m *MockRecordService) Summary(ctx context.Context) (*service.TenantSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TenantSummary), args.Error(1)
}
