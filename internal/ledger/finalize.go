// Package ledger turns reviewed payment drafts into canonical, immutable
// rent records.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"rentintel/internal/domain"
)

// Finalizer merges a reviewed draft with documented defaults into a
// canonical RentRecord. The zero dependencies are a clock and an id
// generator, injected so finalization stays deterministic under test.
type Finalizer struct {
	now   func() time.Time
	newID func() uuid.UUID
}

// NewFinalizer creates a Finalizer using the wall clock and random UUIDs.
func NewFinalizer() *Finalizer {
	return &Finalizer{now: time.Now, newID: uuid.New}
}

// NewFinalizerWithClock creates a Finalizer with an injected clock and id
// generator (for testing).
func NewFinalizerWithClock(now func() time.Time, newID func() uuid.UUID) *Finalizer {
	return &Finalizer{now: now, newID: newID}
}

// Finalize resolves every missing draft field to its default and assigns a
// fresh identity. It never rejects input: malformed values degrade to
// defaults, and appending the result to the ledger is the caller's job.
//
// isVerified reflects provenance of trust, not user confirmation: only a
// trusted manual flow (a landlord logging a cash collection directly)
// produces verified records. AI-extracted records stay unverified even
// after the user edits and confirms them.
func (f *Finalizer) Finalize(draft domain.RecordDraft, trustedManualEntry bool) domain.RentRecord {
	now := f.now()

	record := domain.RentRecord{
		ID:            f.newID(),
		Currency:      draft.Currency,
		Date:          resolveDate(draft.Date, now),
		LandlordName:  draft.LandlordName,
		TenantName:    draft.TenantName,
		PaymentMethod: draft.PaymentMethod,
		Description:   draft.Description,
		IsVerified:    trustedManualEntry,
		DocumentType:  draft.DocumentType,
		OriginalText:  draft.OriginalText,
		CreatedAt:     now.UTC(),
	}

	if draft.Amount != nil && *draft.Amount > 0 {
		record.Amount = *draft.Amount
	}
	if record.Currency == "" {
		record.Currency = "RWF"
	}
	if record.LandlordName == "" {
		record.LandlordName = "Unknown Landlord"
	}
	if record.TenantName == "" {
		record.TenantName = "Me"
	}
	if record.PaymentMethod == "" {
		record.PaymentMethod = domain.PaymentMethodCash
	}
	if record.Description == "" {
		record.Description = "Rent Payment"
	}
	if record.DocumentType == "" {
		record.DocumentType = domain.DocumentTypeOther
	}

	switch {
	case trustedManualEntry, draft.ConfidenceScore == nil:
		record.ConfidenceScore = 100
	default:
		record.ConfidenceScore = clampScore(*draft.ConfidenceScore)
	}

	return record
}

// DraftFromExtraction converts a normalized extraction result into a draft
// ready for user review. Nil fields stay empty so Finalize applies the
// documented defaults.
func DraftFromExtraction(res domain.ExtractionResult, originalText string) domain.RecordDraft {
	draft := domain.RecordDraft{
		Currency:      res.Currency,
		PaymentMethod: res.PaymentMethod,
		Description:   res.Summary,
		DocumentType:  res.DocumentType,
		OriginalText:  originalText,
	}
	if res.Amount != nil {
		draft.Amount = res.Amount
	}
	if res.Date != nil {
		draft.Date = *res.Date
	}
	if res.LandlordName != nil {
		draft.LandlordName = *res.LandlordName
	}
	if res.TenantName != nil {
		draft.TenantName = *res.TenantName
	}
	score := res.ConfidenceScore
	draft.ConfidenceScore = &score
	return draft
}

// resolveDate parses an ISO calendar date, falling back to today.
func resolveDate(s string, now time.Time) time.Time {
	if s != "" {
		if d, err := time.Parse("2006-01-02", s); err == nil {
			return d
		}
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func clampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
