package match

import (
	"testing"

	"careerassign/internal/domain/candidate"
	"careerassign/internal/domain/course"
)

func TestQualifiesForCourse(t *testing.T) {
	cases := []struct {
		name    string
		profile candidate.Profile
		req     course.Requirements
		want    bool
	}{
		{
			name:    "gpa and subjects both pass",
			profile: candidate.Profile{GPA: 2.5, Subjects: []string{"math", "physics"}},
			req:     course.Requirements{MinGPA: 2.5, Subjects: []string{"Math"}},
			want:    true,
		},
		{
			name:    "missing required subject",
			profile: candidate.Profile{GPA: 2.5, Subjects: []string{"math", "physics"}},
			req:     course.Requirements{Subjects: []string{"math", "chemistry"}},
			want:    false,
		},
		{
			name:    "gpa below minimum",
			profile: candidate.Profile{GPA: 2.4, Subjects: []string{"math"}},
			req:     course.Requirements{MinGPA: 2.5, Subjects: []string{"math"}},
			want:    false,
		},
		{
			name:    "empty requirements trivially pass",
			profile: candidate.Profile{},
			req:     course.Requirements{},
			want:    true,
		},
		{
			name:    "subject match ignores case and spacing",
			profile: candidate.Profile{GPA: 3, Subjects: []string{" CHEMISTRY "}},
			req:     course.Requirements{Subjects: []string{"chemistry"}},
			want:    true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := QualifiesForCourse(tc.profile, tc.req); got != tc.want {
				t.Errorf("QualifiesForCourse = %v, want %v", got, tc.want)
			}
		})
	}
}
