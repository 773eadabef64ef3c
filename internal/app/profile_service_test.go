package app

import (
	"context"
	"testing"

	"careerassign/internal/common"
	"careerassign/internal/domain/candidate"
)

func TestUpsertCandidateValidatesBounds(t *testing.T) {
	s := NewProfileService(newFakeCandidateRepo(), newFakeCompanyRepo())
	cases := []struct {
		name    string
		profile candidate.Profile
	}{
		{"gpa above scale", candidate.Profile{UserID: common.NewUUID(), GPA: 5.5}},
		{"negative gpa", candidate.Profile{UserID: common.NewUUID(), GPA: -0.1}},
		{"negative experience", candidate.Profile{UserID: common.NewUUID(), ExperienceYears: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.UpsertCandidate(context.Background(), tc.profile); !common.Is(err, common.CodeValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpsertCandidateNormalizesLists(t *testing.T) {
	s := NewProfileService(newFakeCandidateRepo(), newFakeCompanyRepo())
	saved, err := s.UpsertCandidate(context.Background(), candidate.Profile{
		UserID:   common.NewUUID(),
		GPA:      3.0,
		Subjects: []string{" math ", "", "physics"},
		Skills:   []string{"  ", "Go "},
	})
	if err != nil {
		t.Fatalf("UpsertCandidate: %v", err)
	}
	if len(saved.Subjects) != 2 || saved.Subjects[0] != "math" {
		t.Errorf("subjects not normalized: %v", saved.Subjects)
	}
	if len(saved.Skills) != 1 || saved.Skills[0] != "Go" {
		t.Errorf("skills not normalized: %v", saved.Skills)
	}
}

func TestAddDocumentRules(t *testing.T) {
	candidates := newFakeCandidateRepo()
	s := NewProfileService(candidates, newFakeCompanyRepo())
	userID := common.NewUUID()
	candidates.seed(candidate.Profile{UserID: userID, CompletedStudies: false})

	if _, err := s.AddDocument(context.Background(), userID, candidate.Document{Type: "resume", Filename: "cv.pdf"}); !common.Is(err, common.CodeValidation) {
		t.Errorf("unknown document type should fail, got %v", err)
	}
	if _, err := s.AddDocument(context.Background(), userID, candidate.Document{Type: candidate.DocumentCertificate, Filename: "cert.exe"}); !common.Is(err, common.CodeValidation) {
		t.Errorf("disallowed extension should fail, got %v", err)
	}
	if _, err := s.AddDocument(context.Background(), userID, candidate.Document{Type: candidate.DocumentTranscript, Filename: "grades.pdf"}); !common.Is(err, common.CodeValidation) {
		t.Errorf("transcript before completed studies should fail, got %v", err)
	}
	if _, err := s.AddDocument(context.Background(), userID, candidate.Document{Type: candidate.DocumentCertificate, Filename: "cert.pdf"}); err != nil {
		t.Errorf("certificate upload should pass: %v", err)
	}

	candidates.seed(candidate.Profile{UserID: userID, CompletedStudies: true})
	if _, err := s.AddDocument(context.Background(), userID, candidate.Document{Type: candidate.DocumentTranscript, Filename: "grades.pdf"}); err != nil {
		t.Errorf("transcript after completed studies should pass: %v", err)
	}
}
