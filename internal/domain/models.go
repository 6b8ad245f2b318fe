package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RentRecord is a canonical payment record. Records are immutable once
// finalized and form an append-only ledger.
type RentRecord struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	Amount          float64       `db:"amount" json:"amount"`
	Currency        string        `db:"currency" json:"currency"`
	Date            time.Time     `db:"date" json:"date"`
	LandlordName    string        `db:"landlord_name" json:"landlordName"`
	TenantName      string        `db:"tenant_name" json:"tenantName"`
	PaymentMethod   PaymentMethod `db:"payment_method" json:"paymentMethod"`
	Description     string        `db:"description" json:"description"`
	IsVerified      bool          `db:"is_verified" json:"isVerified"`
	ConfidenceScore int           `db:"confidence_score" json:"confidenceScore"`
	DocumentType    DocumentType  `db:"document_type" json:"documentType"`
	OriginalText    string        `db:"original_text" json:"originalText,omitempty"`
	CreatedAt       time.Time     `db:"created_at" json:"createdAt"`
}

// Unit is a rental unit in the landlord's roster.
type Unit struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	TenantName  string    `db:"tenant_name" json:"tenantName"`
	TenantPhone string    `db:"tenant_phone" json:"tenantPhone,omitempty"`
	TenantEmail string    `db:"tenant_email" json:"tenantEmail,omitempty"`
	RentAmount  float64   `db:"rent_amount" json:"rentAmount"`
	DueDateDay  int       `db:"due_date_day" json:"dueDateDay"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// IsOccupied reports whether the unit currently has a tenant. A unit is
// occupied iff the tenant name is non-empty and not the vacancy sentinel.
func (u *Unit) IsOccupied() bool {
	return u.TenantName != "" && u.TenantName != VacancySentinel
}

// ExtractionResult is the strictly-typed outcome of normalizing a raw
// inference response. Optional fields stay nil when the model could not
// resolve them; the finalizer substitutes defaults downstream.
type ExtractionResult struct {
	Amount          *float64      `json:"amount"`
	Currency        string        `json:"currency"`
	Date            *string       `json:"date"`
	LandlordName    *string       `json:"landlordName"`
	TenantName      *string       `json:"tenantName"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	DocumentType    DocumentType  `json:"documentType"`
	ConfidenceScore int           `json:"confidenceScore"`
	Summary         string        `json:"summary"`
}

// Failed reports whether this result came from the total-failure default
// path: nothing was extracted and the user should fall back to manual entry.
func (r *ExtractionResult) Failed() bool {
	return r.ConfidenceScore == 0 && r.Amount == nil && r.Date == nil
}

// RecordDraft carries the reviewed (possibly edited) fields for a record
// about to be finalized. Every field is optional; nil or empty values
// resolve to documented defaults.
type RecordDraft struct {
	Amount          *float64      `json:"amount"`
	Currency        string        `json:"currency"`
	Date            string        `json:"date"`
	LandlordName    string        `json:"landlordName"`
	TenantName      string        `json:"tenantName"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Description     string        `json:"description"`
	ConfidenceScore *int          `json:"confidenceScore"`
	DocumentType    DocumentType  `json:"documentType"`
	OriginalText    string        `json:"originalText"`
}

// NamesMatch reports whether a ledger tenant name and a unit tenant name
// refer to the same person, using a case-insensitive substring match in
// either direction. Partial-name entry on either side is tolerated; short
// names can false-positive, which favors a false "paid" over a false "late".
func NamesMatch(recordName, unitName string) bool {
	a := strings.ToLower(strings.TrimSpace(recordName))
	b := strings.ToLower(strings.TrimSpace(unitName))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
