package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"careerassign/internal/common"
	"careerassign/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, company_id, title, gpa_threshold, experience_years, skills, applicants, posted_at`

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	j.PostedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (id, company_id, title, gpa_threshold, experience_years, skills, applicants, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		j.ID, j.CompanyID, j.Title, j.Requirements.GPAThreshold, j.Requirements.ExperienceYears,
		pq.Array(j.Requirements.Skills), pq.Array(uuidStrings(j.Applicants)), j.PostedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, gpa_threshold = $2, experience_years = $3, skills = $4 WHERE id = $5`,
		j.Title, j.Requirements.GPAThreshold, j.Requirements.ExperienceYears, pq.Array(j.Requirements.Skills), j.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return &j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return j, nil
}

func (r *JobRepository) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE company_id = $1 ORDER BY posted_at DESC`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	return collectJobs(rows)
}

func (r *JobRepository) ListRecent(ctx context.Context, limit int) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY posted_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	return collectJobs(rows)
}

func (r *JobRepository) AddApplicant(ctx context.Context, jobID, applicationID common.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET applicants = array_append(applicants, $1) WHERE id = $2`, applicationID, jobID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to record applicant", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) DeleteWithApplications(ctx context.Context, id common.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to start transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM job_applications WHERE job_id = $1`, id); err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job applications", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	if err := tx.Commit(); err != nil {
		return common.NewError(common.CodeInternal, "failed to commit transaction", err)
	}
	return nil
}

type jobScanner interface {
	Scan(dest ...any) error
}

func scanJob(row jobScanner) (*job.Job, error) {
	var j job.Job
	var applicants []string
	if err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Requirements.GPAThreshold, &j.Requirements.ExperienceYears,
		pq.Array(&j.Requirements.Skills), pq.Array(&applicants), &j.PostedAt); err != nil {
		return nil, err
	}
	for _, id := range applicants {
		j.Applicants = append(j.Applicants, common.UUID(id))
	}
	return &j, nil
}

func collectJobs(rows *sql.Rows) ([]job.Job, error) {
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, *j)
	}
	return items, nil
}

func uuidStrings(ids []common.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
