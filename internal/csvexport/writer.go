package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"rentintel/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Date",
	"Amount",
	"Currency",
	"Landlord",
	"Tenant",
	"Payment Method",
	"Document Type",
	"Description",
	"Verified",
	"Confidence Score",
}

// Writer wraps csv.Writer for exporting rent records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords converts rent records to CSV rows and writes them.
func (w *Writer) WriteRecords(records []domain.RentRecord) error {
	for i := range records {
		row := recordToRow(&records[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func recordToRow(r *domain.RentRecord) []string {
	return []string{
		r.Date.Format("2006-01-02"),
		strconv.FormatFloat(r.Amount, 'f', -1, 64),
		r.Currency,
		r.LandlordName,
		r.TenantName,
		string(r.PaymentMethod),
		string(r.DocumentType),
		r.Description,
		fmt.Sprintf("%t", r.IsVerified),
		strconv.Itoa(r.ConfidenceScore),
	}
}
