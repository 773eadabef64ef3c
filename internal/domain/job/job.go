package job

import (
	"time"

	"careerassign/internal/common"
)

// Requirements describes what a posting expects from a candidate. Zero-valued
// thresholds impose no constraint on the match score.
type Requirements struct {
	GPAThreshold    float64  `json:"gpa_threshold"`
	ExperienceYears float64  `json:"experience_years"`
	Skills          []string `json:"skills"`
}

type Job struct {
	ID           common.UUID   `json:"id"`
	CompanyID    common.UUID   `json:"company_id"`
	Title        string        `json:"title"`
	Requirements Requirements  `json:"requirements"`
	Applicants   []common.UUID `json:"applicants,omitempty"`
	PostedAt     time.Time     `json:"posted_at"`
}
