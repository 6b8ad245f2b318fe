package port

import (
	"context"

	"rentintel/internal/domain"
)

// RecordRepository persists the append-only rent record ledger.
type RecordRepository interface {
	Create(ctx context.Context, record *domain.RentRecord) error
	// List returns the full ledger ordered by payment date descending.
	List(ctx context.Context) ([]domain.RentRecord, error)
}
