package notification

import (
	"context"

	"careerassign/internal/common"
)

type Repository interface {
	Create(ctx context.Context, n Notification) (*Notification, error)
	ListByUser(ctx context.Context, userID common.UUID) ([]Notification, error)
	MarkRead(ctx context.Context, userID, id common.UUID) error
	Delete(ctx context.Context, userID, id common.UUID) error
}
