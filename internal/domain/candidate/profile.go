package candidate

import (
	"strings"
	"time"

	"careerassign/internal/common"
)

type DocumentType string

const (
	DocumentTranscript  DocumentType = "transcript"
	DocumentCertificate DocumentType = "certificate"
)

type Document struct {
	ID         common.UUID  `json:"id"`
	Type       DocumentType `json:"type"`
	Filename   string       `json:"filename"`
	URL        string       `json:"url,omitempty"`
	UploadedAt time.Time    `json:"uploaded_at"`
}

// Profile is the candidate-owned side of every scoring and qualification
// decision. GPA is on a 0-5 scale.
type Profile struct {
	UserID           common.UUID `json:"user_id"`
	Name             string      `json:"name"`
	GPA              float64     `json:"gpa"`
	ExperienceYears  float64     `json:"experience_years"`
	Subjects         []string    `json:"subjects"`
	Skills           []string    `json:"skills"`
	Documents        []Document  `json:"documents"`
	CompletedStudies bool        `json:"completed_studies"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func (p Profile) CertificateCount() int {
	count := 0
	for _, doc := range p.Documents {
		if doc.Type == DocumentCertificate {
			count++
		}
	}
	return count
}

// Normalize trims subject and skill entries and drops blanks. It does not
// lowercase: matching is case-insensitive at score time, display keeps the
// candidate's casing.
func (p *Profile) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Subjects = cleanList(p.Subjects)
	p.Skills = cleanList(p.Skills)
}

func (p Profile) Validate() error {
	if p.GPA < 0 || p.GPA > 5 {
		return common.NewValidationError("invalid profile", map[string]string{"gpa": "gpa must be between 0 and 5"})
	}
	if p.ExperienceYears < 0 {
		return common.NewValidationError("invalid profile", map[string]string{"experience_years": "experience must not be negative"})
	}
	return nil
}

func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
