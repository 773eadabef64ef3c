package candidate

import (
	"context"

	"careerassign/internal/common"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID common.UUID) (*Profile, error)
	Upsert(ctx context.Context, profile Profile) (*Profile, error)
	AddDocument(ctx context.Context, userID common.UUID, doc Document) (*Document, error)
	RemoveDocument(ctx context.Context, userID, docID common.UUID) error
	ListCompletedStudies(ctx context.Context) ([]Profile, error)
}
