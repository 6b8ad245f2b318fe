// Package report renders a portfolio snapshot as an Excel workbook.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"rentintel/internal/domain"
	"rentintel/internal/recon"
)

const sheetName = "Portfolio"

var headers = []string{"Unit", "Tenant", "Rent (RWF)", "Due Day", "Status"}

// BuildPortfolioWorkbook writes one row per unit with its derived status,
// followed by the cycle aggregates. Callers own closing the returned file.
func BuildPortfolioWorkbook(units []domain.Unit, snapshot *recon.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for i := range units {
		unit := &units[i]
		tenant := unit.TenantName
		if !unit.IsOccupied() {
			tenant = domain.VacancySentinel
		}
		row := i + 2
		values := []interface{}{
			unit.Name,
			tenant,
			unit.RentAmount,
			unit.DueDateDay,
			string(snapshot.PerUnit[unit.ID]),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("unit cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("writing unit row: %w", err)
			}
		}
	}

	aggRow := len(units) + 3
	agg := snapshot.Aggregates
	summary := [][2]interface{}{
		{"Expected", agg.Expected},
		{"Collected", agg.Collected},
		{"Collection Rate (%)", agg.CollectionRate},
		{"Occupancy Rate (%)", agg.OccupancyRate},
	}
	for i, pair := range summary {
		labelCell, err := excelize.CoordinatesToCellName(1, aggRow+i)
		if err != nil {
			return nil, fmt.Errorf("summary cell: %w", err)
		}
		valueCell, err := excelize.CoordinatesToCellName(2, aggRow+i)
		if err != nil {
			return nil, fmt.Errorf("summary cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, labelCell, pair[0]); err != nil {
			return nil, fmt.Errorf("writing summary label: %w", err)
		}
		if err := f.SetCellValue(sheetName, valueCell, pair[1]); err != nil {
			return nil, fmt.Errorf("writing summary value: %w", err)
		}
	}

	return f, nil
}
