package postgres

import (
	"context"
	"database/sql"
	"errors"

	"careerassign/internal/common"
	"careerassign/internal/domain/institution"
)

type InstitutionRepository struct {
	db *sql.DB
}

func NewInstitutionRepository(db *sql.DB) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

func (r *InstitutionRepository) Create(ctx context.Context, inst institution.Institution) (*institution.Institution, error) {
	inst.ID = common.NewUUID()
	var ownerID any
	if !inst.OwnerID.IsZero() {
		ownerID = inst.OwnerID
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO institutions (id, name, address, owner_id) VALUES ($1, $2, $3, $4)`,
		inst.ID, inst.Name, inst.Address, ownerID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create institution", err)
	}
	return &inst, nil
}

func (r *InstitutionRepository) Update(ctx context.Context, inst institution.Institution) (*institution.Institution, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE institutions SET name = $1, address = $2 WHERE id = $3`,
		inst.Name, inst.Address, inst.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update institution", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "institution not found", sql.ErrNoRows)
	}
	return &inst, nil
}

func (r *InstitutionRepository) GetByID(ctx context.Context, id common.UUID) (*institution.Institution, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, address, COALESCE(owner_id, '') FROM institutions WHERE id = $1`, id)
	return scanInstitution(row)
}

func (r *InstitutionRepository) FindByOwner(ctx context.Context, ownerID common.UUID) (*institution.Institution, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, address, COALESCE(owner_id, '') FROM institutions WHERE owner_id = $1`, ownerID)
	return scanInstitution(row)
}

func (r *InstitutionRepository) List(ctx context.Context) ([]institution.Institution, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, address, COALESCE(owner_id, '') FROM institutions ORDER BY name`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list institutions", err)
	}
	defer rows.Close()
	var items []institution.Institution
	for rows.Next() {
		var inst institution.Institution
		if err := rows.Scan(&inst.ID, &inst.Name, &inst.Address, &inst.OwnerID); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan institution", err)
		}
		items = append(items, inst)
	}
	return items, nil
}

func (r *InstitutionRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM institutions WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete institution", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "institution not found", sql.ErrNoRows)
	}
	return nil
}

func scanInstitution(row *sql.Row) (*institution.Institution, error) {
	var inst institution.Institution
	if err := row.Scan(&inst.ID, &inst.Name, &inst.Address, &inst.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "institution not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load institution", err)
	}
	return &inst, nil
}
