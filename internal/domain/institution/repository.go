package institution

import (
	"context"

	"careerassign/internal/common"
)

type Repository interface {
	Create(ctx context.Context, inst Institution) (*Institution, error)
	Update(ctx context.Context, inst Institution) (*Institution, error)
	GetByID(ctx context.Context, id common.UUID) (*Institution, error)
	FindByOwner(ctx context.Context, ownerID common.UUID) (*Institution, error)
	List(ctx context.Context) ([]Institution, error)
	Delete(ctx context.Context, id common.UUID) error
}

type FacultyRepository interface {
	Create(ctx context.Context, faculty Faculty) (*Faculty, error)
	Update(ctx context.Context, faculty Faculty) (*Faculty, error)
	GetByID(ctx context.Context, id common.UUID) (*Faculty, error)
	ListByInstitution(ctx context.Context, instID common.UUID) ([]Faculty, error)
	Delete(ctx context.Context, id common.UUID) error
}
