// Package match holds the scoring and qualification rules shared by course
// admission and job matching. Everything here is pure and total: missing or
// zero-valued requirement fields degrade to neutral defaults, never errors.
package match

import (
	"strings"

	"careerassign/internal/domain/candidate"
	"careerassign/internal/domain/job"
)

// QualifyingScore is the shared cutoff for job applications, interview
// eligibility and proactive job-match notifications. Comparison is strict:
// a candidate qualifies only when the score exceeds it.
const QualifyingScore = 0.7

// certificateCap: certificates beyond this count yield no further credit.
const certificateCap = 3

const (
	weightGPA          = 0.4
	weightExperience   = 0.2
	weightCertificates = 0.2
	weightSkills       = 0.2
)

// Score computes the compatibility between a candidate profile and a job's
// requirements as a value in [0,1]. Each term is clamped to 1 so no single
// strong attribute can compensate unboundedly for a missing one.
func Score(profile candidate.Profile, req job.Requirements) float64 {
	gpaScore := 1.0
	if req.GPAThreshold > 0 {
		gpaScore = clamp(profile.GPA / maxFloat(req.GPAThreshold, 0.1))
	}

	expScore := 1.0
	if req.ExperienceYears > 0 {
		expScore = clamp(profile.ExperienceYears / maxFloat(req.ExperienceYears, 1))
	}

	certScore := clamp(float64(profile.CertificateCount()) / certificateCap)

	skillScore := 1.0
	if required := normalizeSet(req.Skills); len(required) > 0 {
		have := normalizeSet(profile.Skills)
		matched := 0
		for skill := range required {
			if _, ok := have[skill]; ok {
				matched++
			}
		}
		skillScore = float64(matched) / float64(len(required))
	}

	return weightGPA*gpaScore + weightExperience*expScore + weightCertificates*certScore + weightSkills*skillScore
}

// Qualifies reports whether a score clears the shared cutoff.
func Qualifies(score float64) bool {
	return score > QualifyingScore
}

func clamp(value float64) float64 {
	if value > 1 {
		return 1
	}
	if value < 0 {
		return 0
	}
	return value
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// normalizeSet lowercases and trims entries; duplicates collapse.
func normalizeSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		normalized := strings.ToLower(strings.TrimSpace(value))
		if normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}
