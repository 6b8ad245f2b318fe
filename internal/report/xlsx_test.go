package report_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentintel/internal/domain"
	"rentintel/internal/recon"
	"rentintel/internal/report"
)

func TestBuildPortfolioWorkbook(t *testing.T) {
	occupied := domain.Unit{ID: uuid.New(), Name: "1A", TenantName: "Keza Marie", RentAmount: 100000, DueDateDay: 5}
	vacant := domain.Unit{ID: uuid.New(), Name: "2B", TenantName: "", RentAmount: 80000, DueDateDay: 1}

	snapshot := &recon.Snapshot{
		PerUnit: map[uuid.UUID]domain.UnitStatus{
			occupied.ID: domain.UnitStatusPaid,
			vacant.ID:   domain.UnitStatusVacant,
		},
		Aggregates: recon.Aggregates{
			Collected:      100000,
			Expected:       100000,
			CollectionRate: 100,
			OccupancyRate:  50,
		},
	}

	f, err := report.BuildPortfolioWorkbook([]domain.Unit{occupied, vacant}, snapshot)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Portfolio")
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, []string{"Unit", "Tenant", "Rent (RWF)", "Due Day", "Status"}, rows[0])
	assert.Equal(t, "1A", rows[1][0])
	assert.Equal(t, "Keza Marie", rows[1][1])
	assert.Equal(t, "paid", rows[1][4])
	// Vacant units render the sentinel even when the stored name is empty.
	assert.Equal(t, "Vacant", rows[2][1])
	assert.Equal(t, "vacant", rows[2][4])

	// Summary block sits below the unit rows.
	var labels []string
	for _, row := range rows {
		if len(row) > 0 {
			labels = append(labels, row[0])
		}
	}
	assert.Contains(t, labels, "Expected")
	assert.Contains(t, labels, "Collected")
	assert.Contains(t, labels, "Collection Rate (%)")
	assert.Contains(t, labels, "Occupancy Rate (%)")
}

func TestBuildPortfolioWorkbook_EmptyRoster(t *testing.T) {
	snapshot := &recon.Snapshot{PerUnit: map[uuid.UUID]domain.UnitStatus{}}

	f, err := report.BuildPortfolioWorkbook(nil, snapshot)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Portfolio")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Unit", rows[0][0])
}
