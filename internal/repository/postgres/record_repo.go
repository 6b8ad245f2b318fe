package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"rentintel/internal/domain"
	"rentintel/internal/port"
)

type recordRepo struct {
	db *sqlx.DB
}

// NewRecordRepo creates a new PostgreSQL-backed RecordRepository.
func NewRecordRepo(db *sqlx.DB) port.RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) Create(ctx context.Context, record *domain.RentRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO rent_records
		(id, amount, currency, date, landlord_name, tenant_name, payment_method,
		 description, is_verified, confidence_score, document_type, original_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.Amount, record.Currency, record.Date, record.LandlordName,
		record.TenantName, record.PaymentMethod, record.Description, record.IsVerified,
		record.ConfidenceScore, record.DocumentType, record.OriginalText, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("recordRepo.Create: %w", err)
	}
	return nil
}

func (r *recordRepo) List(ctx context.Context) ([]domain.RentRecord, error) {
	var records []domain.RentRecord
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM rent_records ORDER BY date DESC, created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("recordRepo.List: %w", err)
	}
	return records, nil
}
