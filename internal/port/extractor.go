package port

import "context"

// ExtractInput carries one piece of payment evidence: either free text
// (Text set) or an image (FileBytes + ContentType set).
type ExtractInput struct {
	Text        string
	FileBytes   []byte
	ContentType string
}

// RawExtraction is the loosely-typed guess returned by an inference
// provider, prior to normalization. Enum-like fields arrive as free text
// and Amount/ConfidenceScore may be any JSON value.
type RawExtraction struct {
	Amount          any    `json:"amount"`
	Currency        string `json:"currency"`
	Date            string `json:"date"`
	LandlordName    string `json:"landlordName"`
	TenantName      string `json:"tenantName"`
	PaymentMethod   string `json:"paymentMethod"`
	DocumentType    string `json:"documentType"`
	ConfidenceScore any    `json:"confidenceScore"`
	Summary         string `json:"summary"`
}

// ExtractOutput wraps a raw extraction with provider audit metadata.
type ExtractOutput struct {
	Raw        RawExtraction
	ModelUsed  string
	PromptUsed string
}

// EvidenceExtractor abstracts LLM-based rent evidence extraction.
type EvidenceExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}
