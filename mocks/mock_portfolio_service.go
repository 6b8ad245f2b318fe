package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentintel/internal/domain"
	"rentintel/internal/service"
)

// MockPortfolioService is a mock implementation of service.PortfolioService.
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) Snapshot(ctx context.Context, filter domain.StatusFilter) (*service.PortfolioView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PortfolioView), args.Error(1)
}

func (m *MockPortfolioService) ReportXLSX(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
