package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentintel/internal/port"
)

// MockEvidenceExtractor is a mock implementation of port.EvidenceExtractor.
type MockEvidenceExtractor struct {
	mock.Mock
}

func (m *MockEvidenceExtractor) Extract(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ExtractOutput), args.Error(1)
}
