package job

import (
	"context"

	"careerassign/internal/common"
)

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	Update(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	ListByCompany(ctx context.Context, companyID common.UUID) ([]Job, error)
	ListRecent(ctx context.Context, limit int) ([]Job, error)
	AddApplicant(ctx context.Context, jobID, applicationID common.UUID) error
	// DeleteWithApplications removes the job and every job application
	// against it in a single transaction.
	DeleteWithApplications(ctx context.Context, id common.UUID) error
}
