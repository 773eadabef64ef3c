package company

import (
	"context"
	"time"

	"careerassign/internal/common"
)

type Profile struct {
	UserID      common.UUID `json:"user_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type Repository interface {
	GetByUserID(ctx context.Context, userID common.UUID) (*Profile, error)
	Upsert(ctx context.Context, profile Profile) (*Profile, error)
}
