package course

import "careerassign/internal/common"

// Requirements is the hard admission gate for a course. A zero MinGPA and an
// empty subject list impose no constraint.
type Requirements struct {
	MinGPA   float64  `json:"min_gpa"`
	Subjects []string `json:"subjects"`
}

type Course struct {
	ID            common.UUID  `json:"id"`
	InstitutionID common.UUID  `json:"institution_id"`
	FacultyID     common.UUID  `json:"faculty_id"`
	Name          string       `json:"name"`
	Requirements  Requirements `json:"requirements"`
	Published     bool         `json:"published"`
}
