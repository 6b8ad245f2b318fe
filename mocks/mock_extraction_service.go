package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"rentintel/internal/domain"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) ExtractText(ctx context.Context, text string) domain.ExtractionResult {
	args := m.Called(ctx, text)
	return args.Get(0).(domain.ExtractionResult)
}

func (m *MockExtractionService) ExtractImage(ctx context.Context, contentType string, size int64, body io.Reader) (domain.ExtractionResult, error) {
	args := m.Called(ctx, contentType, size, body)
	return args.Get(0).(domain.ExtractionResult), args.Error(1)
}
