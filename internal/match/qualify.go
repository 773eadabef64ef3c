package match

import (
	"careerassign/internal/domain/candidate"
	"careerassign/internal/domain/course"
)

// QualifiesForCourse is the hard admission gate: the GPA floor and the
// required-subject subset check must both hold. There is no partial credit
// and no weighting; this is distinct from Score.
func QualifiesForCourse(profile candidate.Profile, req course.Requirements) bool {
	if profile.GPA < req.MinGPA {
		return false
	}
	required := normalizeSet(req.Subjects)
	if len(required) == 0 {
		return true
	}
	have := normalizeSet(profile.Subjects)
	for subject := range required {
		if _, ok := have[subject]; !ok {
			return false
		}
	}
	return true
}
