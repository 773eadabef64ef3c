package course

import (
	"context"

	"careerassign/internal/common"
)

type Repository interface {
	Create(ctx context.Context, c Course) (*Course, error)
	Update(ctx context.Context, c Course) (*Course, error)
	GetByID(ctx context.Context, id common.UUID) (*Course, error)
	ListByInstitution(ctx context.Context, instID common.UUID) ([]Course, error)
	ListByFaculty(ctx context.Context, facultyID common.UUID) ([]Course, error)
	ListPublished(ctx context.Context) ([]Course, error)
	SetPublished(ctx context.Context, id common.UUID, published bool) error
	Delete(ctx context.Context, id common.UUID) error
}
