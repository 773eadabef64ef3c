package match

import (
	"math"
	"testing"

	"careerassign/internal/domain/candidate"
	"careerassign/internal/domain/job"
)

func certificates(count int) []candidate.Document {
	docs := make([]candidate.Document, 0, count)
	for i := 0; i < count; i++ {
		docs = append(docs, candidate.Document{Type: candidate.DocumentCertificate})
	}
	return docs
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreBounds(t *testing.T) {
	profiles := []candidate.Profile{
		{},
		{GPA: 5, ExperienceYears: 40, Skills: []string{"go", "sql"}, Documents: certificates(10)},
		{GPA: -1, ExperienceYears: -3},
	}
	requirements := []job.Requirements{
		{},
		{GPAThreshold: 5, ExperienceYears: 10, Skills: []string{"go", "sql", "python"}},
		{GPAThreshold: 0.05},
	}
	for _, profile := range profiles {
		for _, req := range requirements {
			score := Score(profile, req)
			if score < 0 || score > 1 {
				t.Errorf("Score(%+v, %+v) = %v, want within [0,1]", profile, req, score)
			}
			if again := Score(profile, req); again != score {
				t.Errorf("Score not deterministic: %v then %v", score, again)
			}
		}
	}
}

func TestScoreGPATerm(t *testing.T) {
	cases := []struct {
		name      string
		gpa       float64
		threshold float64
		want      float64
	}{
		{"meets threshold exactly", 3.0, 3.0, 1.0},
		{"zero gpa", 0, 3.0, 0},
		{"half of threshold", 2.0, 4.0, 0.5},
		{"above threshold clamps", 5.0, 3.0, 1.0},
		{"no threshold is neutral", 0, 0, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := candidate.Profile{GPA: tc.gpa}
			req := job.Requirements{GPAThreshold: tc.threshold}
			// Isolate the GPA term: certificates contribute 0, the other
			// terms are neutral when unset.
			got := (Score(profile, req) - weightExperience - weightSkills) / weightGPA
			if !almostEqual(got, tc.want) {
				t.Errorf("gpa sub-score = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreCertificateTerm(t *testing.T) {
	cases := []struct {
		count int
		want  float64
	}{
		{0, 0},
		{1, 1.0 / 3},
		{2, 2.0 / 3},
		{3, 1.0},
		{5, 1.0},
	}
	for _, tc := range cases {
		profile := candidate.Profile{Documents: certificates(tc.count)}
		got := (Score(profile, job.Requirements{}) - weightGPA - weightExperience - weightSkills) / weightCertificates
		if !almostEqual(got, tc.want) {
			t.Errorf("%d certificates: sub-score = %v, want %v", tc.count, got, tc.want)
		}
	}
}

func TestScoreCertificateTermIgnoresTranscripts(t *testing.T) {
	profile := candidate.Profile{Documents: []candidate.Document{
		{Type: candidate.DocumentTranscript},
		{Type: candidate.DocumentCertificate},
	}}
	got := (Score(profile, job.Requirements{}) - weightGPA - weightExperience - weightSkills) / weightCertificates
	if !almostEqual(got, 1.0/3) {
		t.Errorf("sub-score = %v, want %v", got, 1.0/3)
	}
}

func TestScoreSkillTerm(t *testing.T) {
	profile := candidate.Profile{Skills: []string{"SQL "}}
	req := job.Requirements{Skills: []string{"python", "sql"}}
	got := (Score(profile, req) - weightGPA - weightExperience) / weightSkills
	if !almostEqual(got, 0.5) {
		t.Errorf("skill sub-score = %v, want 0.5", got)
	}
}

func TestScoreWorkedExample(t *testing.T) {
	profile := candidate.Profile{
		GPA:             4,
		ExperienceYears: 2,
		Skills:          []string{"python"},
		Documents:       certificates(2),
	}
	req := job.Requirements{
		GPAThreshold:    4,
		ExperienceYears: 1,
		Skills:          []string{"python", "sql"},
	}
	want := 0.4 + 0.2 + 0.2*(2.0/3) + 0.2*0.5
	got := Score(profile, req)
	if !almostEqual(got, want) {
		t.Errorf("Score = %v, want %v", got, want)
	}
	if !Qualifies(got) {
		t.Errorf("score %v should qualify", got)
	}
}

func TestQualifiesIsStrict(t *testing.T) {
	if Qualifies(QualifyingScore) {
		t.Error("score equal to the cutoff must not qualify")
	}
	if !Qualifies(QualifyingScore + 0.0001) {
		t.Error("score above the cutoff must qualify")
	}
}
