package application

import (
	"time"

	"careerassign/internal/common"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusWaiting  Status = "waiting"
	StatusAdmitted Status = "admitted"
	StatusRejected Status = "rejected"
)

func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusPending, StatusWaiting, StatusAdmitted, StatusRejected:
		return Status(value), true
	}
	return "", false
}

// MaxPerInstitution caps how many applications a candidate may hold against
// one institution, regardless of status.
const MaxPerInstitution = 2

// Application is a course admission application. SubmittedAt is the ordering
// key for waitlist promotion: the earliest waiting application is promoted
// first.
type Application struct {
	ID              common.UUID `json:"id"`
	CandidateID     common.UUID `json:"candidate_id"`
	CourseID        common.UUID `json:"course_id"`
	InstitutionID   common.UUID `json:"institution_id"`
	CourseName      string      `json:"course_name"`
	InstitutionName string      `json:"institution_name"`
	Status          Status      `json:"status"`
	SubmittedAt     time.Time   `json:"submitted_at"`
}

// StatusChange is one step of an admission-selection plan. From is the status
// the record must still hold at commit time; a mismatch fails the whole plan.
type StatusChange struct {
	ApplicationID common.UUID
	From          Status
	To            Status
}
