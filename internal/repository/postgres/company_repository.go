package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerassign/internal/common"
	"careerassign/internal/domain/company"
)

type CompanyProfileRepository struct {
	db *sql.DB
}

func NewCompanyProfileRepository(db *sql.DB) *CompanyProfileRepository {
	return &CompanyProfileRepository{db: db}
}

func (r *CompanyProfileRepository) GetByUserID(ctx context.Context, userID common.UUID) (*company.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT user_id, name, description, updated_at FROM company_profiles WHERE user_id = $1`, userID)
	var profile company.Profile
	if err := row.Scan(&profile.UserID, &profile.Name, &profile.Description, &profile.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "company profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load company profile", err)
	}
	return &profile, nil
}

func (r *CompanyProfileRepository) Upsert(ctx context.Context, profile company.Profile) (*company.Profile, error) {
	profile.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO company_profiles (user_id, name, description, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET name = $2, description = $3, updated_at = $4`,
		profile.UserID, profile.Name, profile.Description, profile.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upsert company profile", err)
	}
	return &profile, nil
}
