package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"rentintel/internal/domain"
	"rentintel/internal/port"
	"rentintel/internal/recon"
	"rentintel/internal/report"
)

// UnitWithStatus pairs a unit with its derived status for API responses.
type UnitWithStatus struct {
	domain.Unit
	Status domain.UnitStatus `json:"status"`
}

// PortfolioView is the landlord dashboard payload for the current cycle.
type PortfolioView struct {
	Units      []UnitWithStatus `json:"units"`
	Aggregates recon.Aggregates `json:"aggregates"`
}

// PortfolioService reconciles the ledger against the roster. Status is
// recomputed fresh from repository snapshots on every read; nothing is
// cached between calls.
type PortfolioService interface {
	Snapshot(ctx context.Context, filter domain.StatusFilter) (*PortfolioView, error)
	ReportXLSX(ctx context.Context) ([]byte, error)
}

type portfolioService struct {
	unitRepo   port.UnitRepository
	recordRepo port.RecordRepository
	now        func() time.Time
}

// NewPortfolioService creates a new PortfolioService implementation.
func NewPortfolioService(unitRepo port.UnitRepository, recordRepo port.RecordRepository) PortfolioService {
	return &portfolioService{unitRepo: unitRepo, recordRepo: recordRepo, now: time.Now}
}

// NewPortfolioServiceWithClock creates a PortfolioService with an injected
// clock (for testing).
func NewPortfolioServiceWithClock(unitRepo port.UnitRepository, recordRepo port.RecordRepository, now func() time.Time) PortfolioService {
	return &portfolioService{unitRepo: unitRepo, recordRepo: recordRepo, now: now}
}

func (s *portfolioService) Snapshot(ctx context.Context, filter domain.StatusFilter) (*PortfolioView, error) {
	units, snapshot, err := s.derive(ctx)
	if err != nil {
		return nil, err
	}

	filtered := recon.FilterByStatus(snapshot, units, filter)
	view := &PortfolioView{
		Units:      make([]UnitWithStatus, 0, len(filtered)),
		Aggregates: snapshot.Aggregates,
	}
	for i := range filtered {
		view.Units = append(view.Units, UnitWithStatus{
			Unit:   filtered[i],
			Status: snapshot.PerUnit[filtered[i].ID],
		})
	}
	return view, nil
}

func (s *portfolioService) ReportXLSX(ctx context.Context) ([]byte, error) {
	units, snapshot, err := s.derive(ctx)
	if err != nil {
		return nil, err
	}

	workbook, err := report.BuildPortfolioWorkbook(units, snapshot)
	if err != nil {
		return nil, fmt.Errorf("portfolio.ReportXLSX: %w", err)
	}
	defer func() { _ = workbook.Close() }()

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, fmt.Errorf("portfolio.ReportXLSX: writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *portfolioService) derive(ctx context.Context) ([]domain.Unit, *recon.Snapshot, error) {
	units, err := s.unitRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("portfolio: listing units: %w", err)
	}
	records, err := s.recordRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("portfolio: listing records: %w", err)
	}

	snapshot := recon.DeriveStatus(units, records, recon.CurrentCycle(s.now()))
	return units, snapshot, nil
}
