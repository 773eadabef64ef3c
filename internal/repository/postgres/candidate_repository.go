package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"careerassign/internal/common"
	"careerassign/internal/domain/candidate"
)

type CandidateProfileRepository struct {
	db *sql.DB
}

func NewCandidateProfileRepository(db *sql.DB) *CandidateProfileRepository {
	return &CandidateProfileRepository{db: db}
}

func (r *CandidateProfileRepository) GetByUserID(ctx context.Context, userID common.UUID) (*candidate.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT user_id, name, gpa, experience_years, subjects, skills, completed_studies, updated_at
		FROM candidate_profiles WHERE user_id = $1`, userID)
	var profile candidate.Profile
	if err := row.Scan(&profile.UserID, &profile.Name, &profile.GPA, &profile.ExperienceYears,
		pq.Array(&profile.Subjects), pq.Array(&profile.Skills), &profile.CompletedStudies, &profile.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "candidate profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load candidate profile", err)
	}
	docs, err := r.listDocuments(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Documents = docs
	return &profile, nil
}

func (r *CandidateProfileRepository) Upsert(ctx context.Context, profile candidate.Profile) (*candidate.Profile, error) {
	profile.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO candidate_profiles (user_id, name, gpa, experience_years, subjects, skills, completed_studies, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET name = $2, gpa = $3, experience_years = $4, subjects = $5, skills = $6, completed_studies = $7, updated_at = $8`,
		profile.UserID, profile.Name, profile.GPA, profile.ExperienceYears,
		pq.Array(profile.Subjects), pq.Array(profile.Skills), profile.CompletedStudies, profile.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upsert candidate profile", err)
	}
	return r.GetByUserID(ctx, profile.UserID)
}

func (r *CandidateProfileRepository) AddDocument(ctx context.Context, userID common.UUID, doc candidate.Document) (*candidate.Document, error) {
	doc.ID = common.NewUUID()
	doc.UploadedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO candidate_documents (id, user_id, doc_type, filename, url, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		doc.ID, userID, doc.Type, doc.Filename, doc.URL, doc.UploadedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to add document", err)
	}
	return &doc, nil
}

func (r *CandidateProfileRepository) RemoveDocument(ctx context.Context, userID, docID common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM candidate_documents WHERE id = $1 AND user_id = $2`, docID, userID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to remove document", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "document not found", sql.ErrNoRows)
	}
	return nil
}

func (r *CandidateProfileRepository) ListCompletedStudies(ctx context.Context) ([]candidate.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id, name, gpa, experience_years, subjects, skills, completed_studies, updated_at
		FROM candidate_profiles WHERE completed_studies = TRUE`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list candidate profiles", err)
	}
	defer rows.Close()
	var profiles []candidate.Profile
	for rows.Next() {
		var profile candidate.Profile
		if err := rows.Scan(&profile.UserID, &profile.Name, &profile.GPA, &profile.ExperienceYears,
			pq.Array(&profile.Subjects), pq.Array(&profile.Skills), &profile.CompletedStudies, &profile.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan candidate profile", err)
		}
		profiles = append(profiles, profile)
	}
	for i := range profiles {
		docs, err := r.listDocuments(ctx, profiles[i].UserID)
		if err != nil {
			return nil, err
		}
		profiles[i].Documents = docs
	}
	return profiles, nil
}

func (r *CandidateProfileRepository) listDocuments(ctx context.Context, userID common.UUID) ([]candidate.Document, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, doc_type, filename, url, uploaded_at
		FROM candidate_documents WHERE user_id = $1 ORDER BY uploaded_at`, userID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list documents", err)
	}
	defer rows.Close()
	var docs []candidate.Document
	for rows.Next() {
		var doc candidate.Document
		if err := rows.Scan(&doc.ID, &doc.Type, &doc.Filename, &doc.URL, &doc.UploadedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan document", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
