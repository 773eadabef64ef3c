package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerassign/internal/common"
	"careerassign/internal/domain/application"
)

type JobApplicationRepository struct {
	db *sql.DB
}

func NewJobApplicationRepository(db *sql.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db: db}
}

const jobApplicationColumns = `id, candidate_id, job_id, match_score, status, ready_for_interview, interview_scheduled, interview_date, interview_expectations, applied_at`

func (r *JobApplicationRepository) Create(ctx context.Context, app application.JobApplication) (*application.JobApplication, error) {
	app.ID = common.NewUUID()
	app.AppliedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO job_applications (id, candidate_id, job_id, match_score, status, ready_for_interview, interview_scheduled, interview_date, interview_expectations, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		app.ID, app.CandidateID, app.JobID, app.MatchScore, app.Status, app.ReadyForInterview,
		app.InterviewScheduled, app.InterviewDate, app.InterviewExpectations, app.AppliedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job application", err)
	}
	return &app, nil
}

func (r *JobApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.JobApplication, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobApplicationColumns+` FROM job_applications WHERE id = $1`, id)
	app, err := scanJobApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job application", err)
	}
	return app, nil
}

func (r *JobApplicationRepository) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.JobApplication, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobApplicationColumns+` FROM job_applications WHERE candidate_id = $1 ORDER BY applied_at DESC`, candidateID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list job applications", err)
	}
	return collectJobApplications(rows)
}

func (r *JobApplicationRepository) ListByJob(ctx context.Context, jobID common.UUID) ([]application.JobApplication, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobApplicationColumns+` FROM job_applications WHERE job_id = $1 ORDER BY applied_at DESC`, jobID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list job applications", err)
	}
	return collectJobApplications(rows)
}

func (r *JobApplicationRepository) ListQualified(ctx context.Context, jobID common.UUID, minScore float64) ([]application.JobApplication, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobApplicationColumns+` FROM job_applications
		WHERE job_id = $1 AND match_score > $2 AND ready_for_interview = TRUE AND status = $3
		ORDER BY match_score DESC`, jobID, minScore, application.JobStatusPending)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list job applications", err)
	}
	return collectJobApplications(rows)
}

func (r *JobApplicationRepository) SetReady(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE job_applications SET ready_for_interview = TRUE WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update job application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job application not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.JobStatus) (*application.JobApplication, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE job_applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *JobApplicationRepository) ScheduleInterview(ctx context.Context, id common.UUID, app application.JobApplication) error {
	result, err := r.db.ExecContext(ctx, `UPDATE job_applications
		SET interview_scheduled = TRUE, interview_date = $1, interview_expectations = $2 WHERE id = $3`,
		app.InterviewDate, app.InterviewExpectations, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update job application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job application not found", sql.ErrNoRows)
	}
	return nil
}

type jobApplicationScanner interface {
	Scan(dest ...any) error
}

func scanJobApplication(row jobApplicationScanner) (*application.JobApplication, error) {
	var app application.JobApplication
	var date sql.NullTime
	var expectations sql.NullString
	if err := row.Scan(&app.ID, &app.CandidateID, &app.JobID, &app.MatchScore, &app.Status,
		&app.ReadyForInterview, &app.InterviewScheduled, &date, &expectations, &app.AppliedAt); err != nil {
		return nil, err
	}
	if date.Valid {
		t := date.Time
		app.InterviewDate = &t
	}
	app.InterviewExpectations = expectations.String
	return &app, nil
}

func collectJobApplications(rows *sql.Rows) ([]application.JobApplication, error) {
	defer rows.Close()
	var items []application.JobApplication
	for rows.Next() {
		app, err := scanJobApplication(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job application", err)
		}
		items = append(items, *app)
	}
	return items, nil
}
