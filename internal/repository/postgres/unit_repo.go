package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"rentintel/internal/domain"
	"rentintel/internal/port"
)

type unitRepo struct {
	db *sqlx.DB
}

// NewUnitRepo creates a new PostgreSQL-backed UnitRepository.
func NewUnitRepo(db *sqlx.DB) port.UnitRepository {
	return &unitRepo{db: db}
}

func (r *unitRepo) Create(ctx context.Context, unit *domain.Unit) error {
	now := time.Now().UTC()
	unit.CreatedAt = now
	unit.UpdatedAt = now

	query := `INSERT INTO units
		(id, name, tenant_name, tenant_phone, tenant_email, rent_amount, due_date_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		unit.ID, unit.Name, unit.TenantName, unit.TenantPhone, unit.TenantEmail,
		unit.RentAmount, unit.DueDateDay, unit.CreatedAt, unit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("unitRepo.Create: %w", err)
	}
	return nil
}

func (r *unitRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	var unit domain.Unit
	err := r.db.GetContext(ctx, &unit, "SELECT * FROM units WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, fmt.Errorf("unitRepo.GetByID: %w", err)
	}
	return &unit, nil
}

func (r *unitRepo) Update(ctx context.Context, unit *domain.Unit) error {
	unit.UpdatedAt = time.Now().UTC()

	query := `UPDATE units SET
		name = $2, tenant_name = $3, tenant_phone = $4, tenant_email = $5,
		rent_amount = $6, due_date_day = $7, updated_at = $8
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		unit.ID, unit.Name, unit.TenantName, unit.TenantPhone, unit.TenantEmail,
		unit.RentAmount, unit.DueDateDay, unit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("unitRepo.Update: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unitRepo.Update rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (r *unitRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM units WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("unitRepo.Delete: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unitRepo.Delete rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (r *unitRepo) List(ctx context.Context) ([]domain.Unit, error) {
	var units []domain.Unit
	err := r.db.SelectContext(ctx, &units, "SELECT * FROM units ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("unitRepo.List: %w", err)
	}
	return units, nil
}
