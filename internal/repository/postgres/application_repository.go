package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerassign/internal/common"
	"careerassign/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, candidate_id, course_id, institution_id, course_name, institution_name, status, submitted_at`

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	app.SubmittedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, candidate_id, course_id, institution_id, course_name, institution_name, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.ID, app.CandidateID, app.CourseID, app.InstitutionID, app.CourseName, app.InstitutionName, app.Status, app.SubmittedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `candidate_id = $1`, candidateID)
}

func (r *ApplicationRepository) ListByInstitution(ctx context.Context, instID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `institution_id = $1`, instID)
}

func (r *ApplicationRepository) ListByCourse(ctx context.Context, courseID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `course_id = $1`, courseID)
}

func (r *ApplicationRepository) ListWaitingByInstitution(ctx context.Context, instID common.UUID) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications
		WHERE institution_id = $1 AND status = $2 ORDER BY submitted_at ASC`, instID, application.StatusWaiting)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return collectApplications(rows)
}

func (r *ApplicationRepository) CountByCandidateAndInstitution(ctx context.Context, candidateID, instID common.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE candidate_id = $1 AND institution_id = $2`,
		candidateID, instID).Scan(&count)
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	return count, nil
}

func (r *ApplicationRepository) ListAdmittedByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications
		WHERE candidate_id = $1 AND status = $2 ORDER BY submitted_at ASC`, candidateID, application.StatusAdmitted)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return collectApplications(rows)
}

func (r *ApplicationRepository) NextWaiting(ctx context.Context, courseID, instID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications
		WHERE course_id = $1 AND institution_id = $2 AND status = $3
		ORDER BY submitted_at ASC LIMIT 1`, courseID, instID, application.StatusWaiting)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "no waiting application", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

// AdmitExclusive performs the check and the write in one statement so two
// concurrent admissions for the same candidate and institution cannot both
// succeed.
func (r *ApplicationRepository) AdmitExclusive(ctx context.Context, id common.UUID) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2
		AND NOT EXISTS (
			SELECT 1 FROM applications other
			WHERE other.candidate_id = applications.candidate_id
			  AND other.institution_id = applications.institution_id
			  AND other.status = $1
			  AND other.id <> applications.id
		)`, application.StatusAdmitted, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to admit application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		// Distinguish a missing record from a blocked admission.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, common.NewError(common.CodeConflict, "candidate already admitted at this institution", nil)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) ApplyPlan(ctx context.Context, plan []application.StatusChange) error {
	if len(plan) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to start transaction", err)
	}
	defer tx.Rollback()

	for _, change := range plan {
		result, err := tx.ExecContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2 AND status = $3`,
			change.To, change.ApplicationID, change.From)
		if err != nil {
			return common.NewError(common.CodeInternal, "failed to apply status change", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return common.NewError(common.CodeInternal, "failed to apply status change", err)
		}
		if rows == 0 {
			return common.NewError(common.CodeConflict, "application changed since the plan was built", nil)
		}
	}
	if err := tx.Commit(); err != nil {
		return common.NewError(common.CodeInternal, "failed to commit transaction", err)
	}
	return nil
}

func (r *ApplicationRepository) list(ctx context.Context, where string, arg any) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE `+where+` ORDER BY submitted_at DESC`, arg)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return collectApplications(rows)
}

type applicationScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row applicationScanner) (*application.Application, error) {
	var app application.Application
	if err := row.Scan(&app.ID, &app.CandidateID, &app.CourseID, &app.InstitutionID,
		&app.CourseName, &app.InstitutionName, &app.Status, &app.SubmittedAt); err != nil {
		return nil, err
	}
	return &app, nil
}

func collectApplications(rows *sql.Rows) ([]application.Application, error) {
	defer rows.Close()
	var items []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, *app)
	}
	return items, nil
}
