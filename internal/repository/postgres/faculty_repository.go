package postgres

import (
	"context"
	"database/sql"
	"errors"

	"careerassign/internal/common"
	"careerassign/internal/domain/institution"
)

type FacultyRepository struct {
	db *sql.DB
}

func NewFacultyRepository(db *sql.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

func (r *FacultyRepository) Create(ctx context.Context, faculty institution.Faculty) (*institution.Faculty, error) {
	faculty.ID = common.NewUUID()
	_, err := r.db.ExecContext(ctx, `INSERT INTO faculties (id, institution_id, name) VALUES ($1, $2, $3)`,
		faculty.ID, faculty.InstitutionID, faculty.Name)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create faculty", err)
	}
	return &faculty, nil
}

func (r *FacultyRepository) Update(ctx context.Context, faculty institution.Faculty) (*institution.Faculty, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE faculties SET name = $1 WHERE id = $2`, faculty.Name, faculty.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update faculty", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "faculty not found", sql.ErrNoRows)
	}
	return &faculty, nil
}

func (r *FacultyRepository) GetByID(ctx context.Context, id common.UUID) (*institution.Faculty, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, institution_id, name FROM faculties WHERE id = $1`, id)
	var faculty institution.Faculty
	if err := row.Scan(&faculty.ID, &faculty.InstitutionID, &faculty.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "faculty not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load faculty", err)
	}
	return &faculty, nil
}

func (r *FacultyRepository) ListByInstitution(ctx context.Context, instID common.UUID) ([]institution.Faculty, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, institution_id, name FROM faculties WHERE institution_id = $1 ORDER BY name`, instID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list faculties", err)
	}
	defer rows.Close()
	var items []institution.Faculty
	for rows.Next() {
		var faculty institution.Faculty
		if err := rows.Scan(&faculty.ID, &faculty.InstitutionID, &faculty.Name); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan faculty", err)
		}
		items = append(items, faculty)
	}
	return items, nil
}

func (r *FacultyRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM faculties WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete faculty", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "faculty not found", sql.ErrNoRows)
	}
	return nil
}
