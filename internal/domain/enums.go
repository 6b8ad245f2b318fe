package domain

// PaymentMethod is the closed set of payment channels a rent payment can
// arrive through. Values carry the display strings shown to users.
type PaymentMethod string

const (
	PaymentMethodMoMo    PaymentMethod = "Mobile Money (MTN)"
	PaymentMethodAirtel  PaymentMethod = "Airtel Money"
	PaymentMethodCash    PaymentMethod = "Cash / Hand"
	PaymentMethodBank    PaymentMethod = "Bank Transfer"
	PaymentMethodUnknown PaymentMethod = "Unknown"
)

// DocumentType classifies the evidence a payment record was derived from.
type DocumentType string

const (
	DocumentTypeSMS       DocumentType = "SMS Notification"
	DocumentTypeReceipt   DocumentType = "Paper Receipt"
	DocumentTypeAgreement DocumentType = "Rental Agreement"
	DocumentTypeOther     DocumentType = "Other"
)

// UnitStatus is the derived payment status of a unit for a billing cycle.
type UnitStatus string

const (
	UnitStatusPaid    UnitStatus = "paid"
	UnitStatusPending UnitStatus = "pending"
	UnitStatusLate    UnitStatus = "late"
	UnitStatusVacant  UnitStatus = "vacant"
)

// StatusFilter selects units by derived status. FilterLate deliberately
// includes pending units so the "needs attention" view covers both.
type StatusFilter string

const (
	FilterAll    StatusFilter = "all"
	FilterLate   StatusFilter = "late"
	FilterPaid   StatusFilter = "paid"
	FilterVacant StatusFilter = "vacant"
)

// ParseStatusFilter maps a query string to a StatusFilter, defaulting to all.
func ParseStatusFilter(s string) StatusFilter {
	switch StatusFilter(s) {
	case FilterLate, FilterPaid, FilterVacant:
		return StatusFilter(s)
	default:
		return FilterAll
	}
}

// UserRole distinguishes the two app personas.
type UserRole string

const (
	RoleTenant   UserRole = "tenant"
	RoleLandlord UserRole = "landlord"
)

// EvidenceFileType represents the allowed evidence image types for upload.
type EvidenceFileType string

const (
	EvidenceFileTypeJPG EvidenceFileType = "jpg"
	EvidenceFileTypePNG EvidenceFileType = "png"
)

// AllowedEvidenceContentTypes maps MIME content types back to EvidenceFileType.
var AllowedEvidenceContentTypes = map[string]EvidenceFileType{
	"image/jpeg": EvidenceFileTypeJPG,
	"image/png":  EvidenceFileTypePNG,
}

// VacancySentinel is the reserved tenant name meaning "no current occupant".
// An empty tenant name means the same thing.
const VacancySentinel = "Vacant"
