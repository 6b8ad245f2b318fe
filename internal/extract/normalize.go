package extract

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"rentintel/internal/domain"
	"rentintel/internal/port"
)

// FailureSummary is the user-facing text for the total-failure default path.
const FailureSummary = "Failed to extract data. Please try again."

// Normalize converts a raw inference response into a strictly-typed
// ExtractionResult. It is total: any malformed or missing field resolves to
// a default instead of an error. Fields the model could not produce stay
// nil so the finalizer can substitute defaults downstream.
func Normalize(raw *port.RawExtraction) domain.ExtractionResult {
	if raw == nil {
		return FailureResult()
	}

	result := domain.ExtractionResult{
		Currency:        strings.TrimSpace(raw.Currency),
		PaymentMethod:   MapPaymentMethod(raw.PaymentMethod),
		DocumentType:    MapDocumentType(raw.DocumentType),
		ConfidenceScore: normalizeConfidence(raw.ConfidenceScore),
		Summary:         strings.TrimSpace(raw.Summary),
	}
	if result.Currency == "" {
		result.Currency = "RWF"
	}
	if result.Summary == "" {
		result.Summary = "Transaction processed"
	}

	if amount, ok := toFloat(raw.Amount); ok {
		result.Amount = &amount
	}
	if date := strings.TrimSpace(raw.Date); isISODate(date) {
		result.Date = &date
	}
	if name := strings.TrimSpace(raw.LandlordName); name != "" {
		result.LandlordName = &name
	}
	if name := strings.TrimSpace(raw.TenantName); name != "" {
		result.TenantName = &name
	}

	return result
}

// FailureResult returns the fully-defaulted result used when inference
// fails outright. This is the designed degrade-to-manual-entry path, never
// a fatal error.
func FailureResult() domain.ExtractionResult {
	return domain.ExtractionResult{
		Currency:        "RWF",
		PaymentMethod:   domain.PaymentMethodUnknown,
		DocumentType:    domain.DocumentTypeOther,
		ConfidenceScore: 0,
		Summary:         FailureSummary,
	}
}

// MapPaymentMethod classifies a free-text payment method guess. Brand
// tokens are checked before generic ones: an SMS mentioning both "MTN" and
// "bank" is a MoMo payment.
func MapPaymentMethod(s string) domain.PaymentMethod {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "MOMO"), strings.Contains(upper, "MTN"):
		return domain.PaymentMethodMoMo
	case strings.Contains(upper, "AIRTEL"):
		return domain.PaymentMethodAirtel
	case strings.Contains(upper, "CASH"):
		return domain.PaymentMethodCash
	case strings.Contains(upper, "BANK"):
		return domain.PaymentMethodBank
	default:
		return domain.PaymentMethodUnknown
	}
}

// MapDocumentType classifies a free-text document type guess. "RECU" covers
// French/Kinyarwanda receipts.
func MapDocumentType(s string) domain.DocumentType {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "SMS"):
		return domain.DocumentTypeSMS
	case strings.Contains(upper, "RECEIPT"), strings.Contains(upper, "RECU"):
		return domain.DocumentTypeReceipt
	case strings.Contains(upper, "AGREEMENT"):
		return domain.DocumentTypeAgreement
	default:
		return domain.DocumentTypeOther
	}
}

func normalizeConfidence(v any) int {
	score, ok := toFloat(v)
	if !ok {
		return 0
	}
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return int(score)
	}
}

// toFloat accepts the numeric shapes a decoded LLM response can take,
// including numbers the model quoted as strings.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func isISODate(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
