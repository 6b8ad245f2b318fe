package port

import (
	"context"

	"github.com/google/uuid"

	"rentintel/internal/domain"
)

// UnitRepository persists the landlord's unit roster.
type UnitRepository interface {
	Create(ctx context.Context, unit *domain.Unit) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
	Update(ctx context.Context, unit *domain.Unit) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Unit, error)
}
