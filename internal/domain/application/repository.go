package application

import (
	"context"

	"careerassign/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	ListByCandidate(ctx context.Context, candidateID common.UUID) ([]Application, error)
	ListByInstitution(ctx context.Context, instID common.UUID) ([]Application, error)
	ListByCourse(ctx context.Context, courseID common.UUID) ([]Application, error)
	ListWaitingByInstitution(ctx context.Context, instID common.UUID) ([]Application, error)
	CountByCandidateAndInstitution(ctx context.Context, candidateID, instID common.UUID) (int, error)
	// ListAdmittedByCandidate returns the candidate's admitted applications
	// across all institutions.
	ListAdmittedByCandidate(ctx context.Context, candidateID common.UUID) ([]Application, error)
	// NextWaiting returns the earliest-submitted waiting application for a
	// (course, institution) seat, or a not-found error when the queue is empty.
	NextWaiting(ctx context.Context, courseID, instID common.UUID) (*Application, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
	// AdmitExclusive sets the application to admitted only while no other
	// application for the same (candidate, institution) pair is admitted, and
	// returns a conflict error otherwise. The check and the write are one
	// atomic step.
	AdmitExclusive(ctx context.Context, id common.UUID) (*Application, error)
	// ApplyPlan commits every status change as a single transaction. Each
	// change only applies while the record still holds its From status; any
	// mismatch or failure rolls the whole plan back.
	ApplyPlan(ctx context.Context, plan []StatusChange) error
}

type JobRepository interface {
	Create(ctx context.Context, app JobApplication) (*JobApplication, error)
	GetByID(ctx context.Context, id common.UUID) (*JobApplication, error)
	ListByCandidate(ctx context.Context, candidateID common.UUID) ([]JobApplication, error)
	ListByJob(ctx context.Context, jobID common.UUID) ([]JobApplication, error)
	// ListQualified returns applications for the job whose snapshot score is
	// strictly above minScore and whose candidate flagged interview readiness.
	ListQualified(ctx context.Context, jobID common.UUID, minScore float64) ([]JobApplication, error)
	SetReady(ctx context.Context, id common.UUID) error
	UpdateStatus(ctx context.Context, id common.UUID, status JobStatus) (*JobApplication, error)
	ScheduleInterview(ctx context.Context, id common.UUID, app JobApplication) error
}
