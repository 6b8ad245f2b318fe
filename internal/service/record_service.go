package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rentintel/internal/domain"
	"rentintel/internal/ledger"
	"rentintel/internal/port"
)

// TenantSummary is the tenant-side dashboard view over the full ledger.
type TenantSummary struct {
	TotalPaid   float64            `json:"totalPaid"`
	RecordCount int                `json:"recordCount"`
	LastPayment *domain.RentRecord `json:"lastPayment,omitempty"`
}

// RecordService finalizes reviewed drafts into ledger records and reads the
// ledger back.
type RecordService interface {
	// Confirm finalizes a reviewed (AI-extracted or hand-entered) draft.
	// The result is never verified: review is not provenance of trust.
	Confirm(ctx context.Context, draft domain.RecordDraft) (*domain.RentRecord, error)
	// CollectCash logs a landlord-confirmed cash collection for a unit,
	// producing a verified record.
	CollectCash(ctx context.Context, unitID uuid.UUID) (*domain.RentRecord, error)
	List(ctx context.Context) ([]domain.RentRecord, error)
	Summary(ctx context.Context) (*TenantSummary, error)
}

type recordService struct {
	recordRepo port.RecordRepository
	unitRepo   port.UnitRepository
	finalizer  *ledger.Finalizer
	now        func() time.Time
}

// NewRecordService creates a new RecordService implementation.
func NewRecordService(recordRepo port.RecordRepository, unitRepo port.UnitRepository, finalizer *ledger.Finalizer) RecordService {
	return &recordService{
		recordRepo: recordRepo,
		unitRepo:   unitRepo,
		finalizer:  finalizer,
		now:        time.Now,
	}
}

func (s *recordService) Confirm(ctx context.Context, draft domain.RecordDraft) (*domain.RentRecord, error) {
	record := s.finalizer.Finalize(draft, false)
	if err := s.recordRepo.Create(ctx, &record); err != nil {
		return nil, fmt.Errorf("record.Confirm: %w", err)
	}
	return &record, nil
}

func (s *recordService) CollectCash(ctx context.Context, unitID uuid.UUID) (*domain.RentRecord, error) {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if !unit.IsOccupied() {
		return nil, domain.ErrUnitVacant
	}

	amount := unit.RentAmount
	draft := domain.RecordDraft{
		Amount:        &amount,
		Currency:      "RWF",
		TenantName:    unit.TenantName,
		LandlordName:  "Me",
		PaymentMethod: domain.PaymentMethodCash,
		Description:   fmt.Sprintf("Rent %s - %s", s.now().Format("January"), unit.Name),
		DocumentType:  domain.DocumentTypeOther,
	}

	record := s.finalizer.Finalize(draft, true)
	if err := s.recordRepo.Create(ctx, &record); err != nil {
		return nil, fmt.Errorf("record.CollectCash: %w", err)
	}
	return &record, nil
}

func (s *recordService) List(ctx context.Context) ([]domain.RentRecord, error) {
	return s.recordRepo.List(ctx)
}

func (s *recordService) Summary(ctx context.Context) (*TenantSummary, error) {
	records, err := s.recordRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("record.Summary: %w", err)
	}

	summary := &TenantSummary{RecordCount: len(records)}
	for i := range records {
		summary.TotalPaid += records[i].Amount
	}
	if len(records) > 0 {
		// List is ordered newest first.
		summary.LastPayment = &records[0]
	}
	return summary, nil
}
