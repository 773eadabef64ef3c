package application

import (
	"time"

	"careerassign/internal/common"
)

type JobStatus string

const (
	JobStatusPending  JobStatus = "pending"
	JobStatusRejected JobStatus = "rejected"
)

// JobApplication records a candidate applying to a job posting. MatchScore is
// the score at submission time and is never recomputed.
type JobApplication struct {
	ID                    common.UUID `json:"id"`
	CandidateID           common.UUID `json:"candidate_id"`
	JobID                 common.UUID `json:"job_id"`
	MatchScore            float64     `json:"match_score"`
	Status                JobStatus   `json:"status"`
	ReadyForInterview     bool        `json:"ready_for_interview"`
	InterviewScheduled    bool        `json:"interview_scheduled"`
	InterviewDate         *time.Time  `json:"interview_date,omitempty"`
	InterviewExpectations string      `json:"interview_expectations,omitempty"`
	AppliedAt             time.Time   `json:"applied_at"`
}
