package notification

import (
	"time"

	"careerassign/internal/common"
)

type Type string

const (
	TypeNewApplication      Type = "new_application"
	TypeApplicationUpdate   Type = "application_update"
	TypeAdmissionRejected   Type = "admission_rejected"
	TypeAdmissionGranted    Type = "admission_granted"
	TypeJobMatch            Type = "job_match"
	TypeNewApplicant        Type = "new_applicant"
	TypeInterviewScheduled  Type = "interview_scheduled"
	TypeApplicationRejected Type = "application_rejected"
)

// Notification is append-only per recipient. The core only produces
// notifications; it never reads them back to make decisions.
type Notification struct {
	ID        common.UUID       `json:"id"`
	UserID    common.UUID       `json:"user_id"`
	Type      Type              `json:"type"`
	Message   string            `json:"message"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}
