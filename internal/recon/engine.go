// Package recon derives per-unit payment status and portfolio aggregates
// from a rent record ledger and a unit roster. Everything here is a pure
// function over the snapshots passed in: no state survives between calls,
// so identical inputs always produce identical output.
package recon

import (
	"math"
	"time"

	"github.com/google/uuid"

	"rentintel/internal/domain"
)

// Cycle is the billing window a ledger is reconciled against: a calendar
// month plus the reference day used for the pending/late cutoff.
type Cycle struct {
	Month time.Month
	Year  int
	Today time.Time
}

// CurrentCycle builds the cycle for the calendar month containing now.
func CurrentCycle(now time.Time) Cycle {
	return Cycle{Month: now.Month(), Year: now.Year(), Today: now}
}

// Aggregates are the portfolio-level figures for one cycle.
type Aggregates struct {
	Collected      float64 `json:"collected"`
	Expected       float64 `json:"expected"`
	CollectionRate int     `json:"collectionRate"`
	OccupancyRate  int     `json:"occupancyRate"`
}

// Snapshot is the result of reconciling a roster against a ledger for one
// cycle.
type Snapshot struct {
	PerUnit    map[uuid.UUID]domain.UnitStatus `json:"perUnit"`
	Aggregates Aggregates                      `json:"aggregates"`
}

// DeriveStatus computes, for the given cycle, each unit's payment status
// and the portfolio aggregates.
//
// A unit is paid when any cycle record's tenant name and the unit's tenant
// name match as substrings in either direction. A record matching several
// units settles all of them: a false "paid" is preferred over a false
// "late", so no dedup is attempted.
func DeriveStatus(units []domain.Unit, records []domain.RentRecord, cycle Cycle) *Snapshot {
	cycleRecords := FilterCycle(records, cycle)

	perUnit := make(map[uuid.UUID]domain.UnitStatus, len(units))
	occupied := 0
	var expected float64

	for i := range units {
		unit := &units[i]
		perUnit[unit.ID] = unitStatus(unit, cycleRecords, cycle)
		if unit.IsOccupied() {
			occupied++
			expected += unit.RentAmount
		}
	}

	var collected float64
	for i := range cycleRecords {
		collected += cycleRecords[i].Amount
	}

	agg := Aggregates{Collected: collected, Expected: expected}
	if expected > 0 {
		agg.CollectionRate = int(math.Round(collected / expected * 100))
	}
	if len(units) > 0 {
		agg.OccupancyRate = int(math.Round(float64(occupied) / float64(len(units)) * 100))
	}

	return &Snapshot{PerUnit: perUnit, Aggregates: agg}
}

// FilterCycle returns the records whose date falls in the cycle's calendar
// month and year.
func FilterCycle(records []domain.RentRecord, cycle Cycle) []domain.RentRecord {
	var out []domain.RentRecord
	for i := range records {
		if records[i].Date.Month() == cycle.Month && records[i].Date.Year() == cycle.Year {
			out = append(out, records[i])
		}
	}
	return out
}

// FilterByStatus returns the units whose derived status matches the filter.
// FilterLate includes pending units: both need the landlord's attention.
// FilterPaid and FilterVacant are exact; FilterAll passes everything.
func FilterByStatus(snapshot *Snapshot, units []domain.Unit, filter domain.StatusFilter) []domain.Unit {
	if filter == domain.FilterAll {
		return units
	}
	var out []domain.Unit
	for i := range units {
		status := snapshot.PerUnit[units[i].ID]
		switch filter {
		case domain.FilterLate:
			if status == domain.UnitStatusLate || status == domain.UnitStatusPending {
				out = append(out, units[i])
			}
		default:
			if status == domain.UnitStatus(filter) {
				out = append(out, units[i])
			}
		}
	}
	return out
}

// unitStatus walks the per-unit state machine for one cycle: vacant units
// stay vacant, a matching cycle record means paid, otherwise the current
// day against the due day decides late versus pending.
func unitStatus(unit *domain.Unit, cycleRecords []domain.RentRecord, cycle Cycle) domain.UnitStatus {
	if !unit.IsOccupied() {
		return domain.UnitStatusVacant
	}
	for i := range cycleRecords {
		if domain.NamesMatch(cycleRecords[i].TenantName, unit.TenantName) {
			return domain.UnitStatusPaid
		}
	}
	if cycle.Today.Day() > unit.DueDateDay {
		return domain.UnitStatusLate
	}
	return domain.UnitStatusPending
}
