package app

import (
	"context"
	"strings"

	"careerassign/internal/common"
	"careerassign/internal/domain/candidate"
	"careerassign/internal/domain/company"
)

type ProfileService struct {
	candidates candidate.Repository
	companies  company.Repository
}

func NewProfileService(candidates candidate.Repository, companies company.Repository) *ProfileService {
	return &ProfileService{candidates: candidates, companies: companies}
}

func (s *ProfileService) GetCandidate(ctx context.Context, userID common.UUID) (*candidate.Profile, error) {
	profile, err := s.candidates.GetByUserID(ctx, userID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return &candidate.Profile{UserID: userID}, nil
		}
		return nil, err
	}
	return profile, nil
}

// UpsertCandidate validates at the boundary: out-of-range GPA or negative
// experience never reaches the ledger.
func (s *ProfileService) UpsertCandidate(ctx context.Context, profile candidate.Profile) (*candidate.Profile, error) {
	profile.Normalize()
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return s.candidates.Upsert(ctx, profile)
}

var allowedDocumentExtensions = map[string]bool{"pdf": true, "jpg": true, "jpeg": true, "png": true}

// AddDocument records document metadata supplied by the upload collaborator.
// Transcripts require completed studies; only certificate-type documents
// contribute to match scores.
func (s *ProfileService) AddDocument(ctx context.Context, userID common.UUID, doc candidate.Document) (*candidate.Document, error) {
	if doc.Type != candidate.DocumentTranscript && doc.Type != candidate.DocumentCertificate {
		return nil, common.NewValidationError("invalid document", map[string]string{"type": "type must be transcript or certificate"})
	}
	doc.Filename = strings.TrimSpace(doc.Filename)
	if doc.Filename == "" {
		return nil, common.NewValidationError("invalid document", map[string]string{"filename": "filename is required"})
	}
	parts := strings.Split(doc.Filename, ".")
	ext := strings.ToLower(parts[len(parts)-1])
	if len(parts) < 2 || !allowedDocumentExtensions[ext] {
		return nil, common.NewValidationError("invalid document", map[string]string{"filename": "only pdf, jpg, jpeg, png allowed"})
	}
	if doc.Type == candidate.DocumentTranscript {
		profile, err := s.candidates.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !profile.CompletedStudies {
			return nil, common.NewError(common.CodeValidation, "complete studies to upload a transcript", nil)
		}
	}
	return s.candidates.AddDocument(ctx, userID, doc)
}

func (s *ProfileService) RemoveDocument(ctx context.Context, userID, docID common.UUID) error {
	return s.candidates.RemoveDocument(ctx, userID, docID)
}

func (s *ProfileService) GetCompany(ctx context.Context, userID common.UUID) (*company.Profile, error) {
	profile, err := s.companies.GetByUserID(ctx, userID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return &company.Profile{UserID: userID}, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpsertCompany(ctx context.Context, profile company.Profile) (*company.Profile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Description = strings.TrimSpace(profile.Description)
	return s.companies.Upsert(ctx, profile)
}
