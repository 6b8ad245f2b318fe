package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentintel/internal/csvexport"
	"rentintel/internal/domain"
)

func TestWriter(t *testing.T) {
	records := []domain.RentRecord{
		{
			ID:              uuid.New(),
			Amount:          150000,
			Currency:        "RWF",
			Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			LandlordName:    "J. Bosco",
			TenantName:      "Keza Marie",
			PaymentMethod:   domain.PaymentMethodMoMo,
			Description:     "June rent",
			IsVerified:      true,
			ConfidenceScore: 100,
			DocumentType:    domain.DocumentTypeSMS,
		},
	}

	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRecords(records))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"Date", "Amount", "Currency", "Landlord", "Tenant",
		"Payment Method", "Document Type", "Description", "Verified", "Confidence Score",
	}, rows[0])
	assert.Equal(t, []string{
		"2025-06-02", "150000", "RWF", "J. Bosco", "Keza Marie",
		"Mobile Money (MTN)", "SMS Notification", "June rent", "true", "100",
	}, rows[1])
}

func TestWriter_EmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRecords(nil))
	w.Flush()

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
