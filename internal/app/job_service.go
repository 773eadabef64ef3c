package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"careerassign/internal/common"
	"careerassign/internal/domain/application"
	"careerassign/internal/domain/candidate"
	"careerassign/internal/domain/company"
	"careerassign/internal/domain/job"
	"careerassign/internal/domain/notification"
	"careerassign/internal/match"
)

type JobService struct {
	jobs          job.Repository
	jobApps       application.JobRepository
	candidates    candidate.Repository
	companies     company.Repository
	notifications notification.Repository
	logger        Logger
}

func NewJobService(jobs job.Repository, jobApps application.JobRepository, candidates candidate.Repository, companies company.Repository, notifications notification.Repository, logger Logger) *JobService {
	return &JobService{
		jobs:          jobs,
		jobApps:       jobApps,
		candidates:    candidates,
		companies:     companies,
		notifications: notifications,
		logger:        logger,
	}
}

// Post creates a job and proactively notifies every candidate with completed
// studies whose match score clears the cutoff. The notification sweep is
// best-effort; a failure there never fails the posting.
func (s *JobService) Post(ctx context.Context, companyID common.UUID, title string, req job.Requirements) (*job.Job, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, common.NewError(common.CodeValidation, "title is required", nil)
	}
	if err := validateJobRequirements(req); err != nil {
		return nil, err
	}
	req.Skills = cleanSkills(req.Skills)

	created, err := s.jobs.Create(ctx, job.Job{
		CompanyID:    companyID,
		Title:        title,
		Requirements: req,
	})
	if err != nil {
		return nil, err
	}

	profiles, err := s.candidates.ListCompletedStudies(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("job match sweep failed: " + err.Error())
		}
		return created, nil
	}
	for _, profile := range profiles {
		if match.Qualifies(match.Score(profile, req)) {
			s.notify(ctx, profile.UserID, notification.TypeJobMatch,
				fmt.Sprintf("New matching job: %s", title),
				map[string]string{"job_id": created.ID.String(), "company_id": companyID.String()})
		}
	}
	return created, nil
}

func (s *JobService) Update(ctx context.Context, companyID, jobID common.UUID, title string, req job.Requirements) (*job.Job, error) {
	current, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if current.CompanyID != companyID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another company", nil)
	}
	if title = strings.TrimSpace(title); title != "" {
		current.Title = title
	}
	if err := validateJobRequirements(req); err != nil {
		return nil, err
	}
	req.Skills = cleanSkills(req.Skills)
	current.Requirements = req
	return s.jobs.Update(ctx, *current)
}

func (s *JobService) Delete(ctx context.Context, companyID, jobID common.UUID) error {
	current, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if current.CompanyID != companyID {
		return common.NewError(common.CodeForbidden, "job belongs to another company", nil)
	}
	return s.jobs.DeleteWithApplications(ctx, jobID)
}

func (s *JobService) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	return s.jobs.ListByCompany(ctx, companyID)
}

// MatchedJob is a job enriched with the viewing candidate's score and the
// posting company's display name.
type MatchedJob struct {
	job.Job
	MatchScore  float64 `json:"match_score"`
	CompanyName string  `json:"company_name"`
}

const matchedJobsLimit = 20

// ListMatching returns recent jobs the candidate qualifies for, score strictly
// above the cutoff.
func (s *JobService) ListMatching(ctx context.Context, candidateID common.UUID) ([]MatchedJob, error) {
	profile, err := s.candidates.GetByUserID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.ListRecent(ctx, matchedJobsLimit)
	if err != nil {
		return nil, err
	}
	names := make(map[common.UUID]string)
	matched := make([]MatchedJob, 0, len(jobs))
	for _, j := range jobs {
		score := match.Score(*profile, j.Requirements)
		if !match.Qualifies(score) {
			continue
		}
		name, ok := names[j.CompanyID]
		if !ok {
			name = "Unknown"
			if companyProfile, err := s.companies.GetByUserID(ctx, j.CompanyID); err == nil && companyProfile.Name != "" {
				name = companyProfile.Name
			}
			names[j.CompanyID] = name
		}
		matched = append(matched, MatchedJob{Job: j, MatchScore: score, CompanyName: name})
	}
	return matched, nil
}

// Apply snapshots the match score at submission time. Applications below the
// cutoff are never created.
func (s *JobService) Apply(ctx context.Context, candidateID, jobID common.UUID) (*application.JobApplication, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	profile, err := s.candidates.GetByUserID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	score := match.Score(*profile, j.Requirements)
	if !match.Qualifies(score) {
		return nil, common.NewError(common.CodeValidation, "you do not qualify for this job", nil)
	}
	created, err := s.jobApps.Create(ctx, application.JobApplication{
		CandidateID: candidateID,
		JobID:       jobID,
		MatchScore:  score,
		Status:      application.JobStatusPending,
	})
	if err != nil {
		return nil, err
	}
	if err := s.jobs.AddApplicant(ctx, jobID, created.ID); err != nil && s.logger != nil {
		s.logger.Error("failed to track applicant on job: " + err.Error())
	}
	s.notify(ctx, j.CompanyID, notification.TypeNewApplicant,
		fmt.Sprintf("New applicant for %s", j.Title), nil)
	return created, nil
}

func (s *JobService) ListCandidateApplications(ctx context.Context, candidateID common.UUID) ([]application.JobApplication, error) {
	return s.jobApps.ListByCandidate(ctx, candidateID)
}

// SetReady flags the candidate's own application as ready for interview.
func (s *JobService) SetReady(ctx context.Context, candidateID, appID common.UUID) error {
	app, err := s.jobApps.GetByID(ctx, appID)
	if err != nil {
		return err
	}
	if app.CandidateID != candidateID {
		return common.NewError(common.CodeForbidden, "not your application", nil)
	}
	return s.jobApps.SetReady(ctx, appID)
}

// QualifiedApplicant pairs a job application with its candidate's profile.
type QualifiedApplicant struct {
	application.JobApplication
	Candidate CandidateSummary `json:"candidate"`
}

// QualifiedApplicants lists applications for the job whose score clears the
// cutoff and whose candidate flagged interview readiness.
func (s *JobService) QualifiedApplicants(ctx context.Context, companyID, jobID common.UUID) ([]QualifiedApplicant, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.CompanyID != companyID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another company", nil)
	}
	apps, err := s.jobApps.ListQualified(ctx, jobID, match.QualifyingScore)
	if err != nil {
		return nil, err
	}
	items := make([]QualifiedApplicant, 0, len(apps))
	for _, app := range apps {
		item := QualifiedApplicant{JobApplication: app}
		if profile, err := s.candidates.GetByUserID(ctx, app.CandidateID); err == nil {
			item.Candidate = CandidateSummary{
				ID:        app.CandidateID,
				Name:      profile.Name,
				GPA:       profile.GPA,
				Subjects:  profile.Subjects,
				Skills:    profile.Skills,
				Documents: profile.Documents,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *JobService) ScheduleInterview(ctx context.Context, companyID, appID common.UUID, date time.Time, expectations string) error {
	expectations = strings.TrimSpace(expectations)
	if date.IsZero() || expectations == "" {
		return common.NewValidationError("invalid interview", map[string]string{"date": "date and expectations are required"})
	}
	app, j, err := s.ownedApplication(ctx, companyID, appID)
	if err != nil {
		return err
	}
	app.InterviewScheduled = true
	app.InterviewDate = &date
	app.InterviewExpectations = expectations
	if err := s.jobApps.ScheduleInterview(ctx, appID, *app); err != nil {
		return err
	}
	s.notify(ctx, app.CandidateID, notification.TypeInterviewScheduled,
		fmt.Sprintf("Interview scheduled for %s on %s.\n\nWhat to expect:\n%s", j.Title, date.Format(time.RFC1123), expectations),
		map[string]string{"job_id": j.ID.String(), "company_id": companyID.String()})
	return nil
}

func (s *JobService) RejectApplicant(ctx context.Context, companyID, appID common.UUID) error {
	app, j, err := s.ownedApplication(ctx, companyID, appID)
	if err != nil {
		return err
	}
	if _, err := s.jobApps.UpdateStatus(ctx, appID, application.JobStatusRejected); err != nil {
		return err
	}
	s.notify(ctx, app.CandidateID, notification.TypeApplicationRejected,
		fmt.Sprintf("Your application for %q has been rejected.", j.Title), nil)
	return nil
}

func (s *JobService) ownedApplication(ctx context.Context, companyID, appID common.UUID) (*application.JobApplication, *job.Job, error) {
	app, err := s.jobApps.GetByID(ctx, appID)
	if err != nil {
		return nil, nil, err
	}
	j, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, nil, err
	}
	if j.CompanyID != companyID {
		return nil, nil, common.NewError(common.CodeForbidden, "applicant belongs to another company", nil)
	}
	return app, j, nil
}

func validateJobRequirements(req job.Requirements) error {
	if req.GPAThreshold < 0 || req.GPAThreshold > 5 {
		return common.NewValidationError("invalid requirements", map[string]string{"gpa_threshold": "gpa threshold must be between 0 and 5"})
	}
	if req.ExperienceYears < 0 {
		return common.NewValidationError("invalid requirements", map[string]string{"experience_years": "experience must not be negative"})
	}
	return nil
}

func cleanSkills(skills []string) []string {
	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}

func (s *JobService) notify(ctx context.Context, userID common.UUID, kind notification.Type, message string, metadata map[string]string) {
	_, err := s.notifications.Create(ctx, notification.Notification{
		UserID:   userID,
		Type:     kind,
		Message:  message,
		Metadata: metadata,
	})
	if err != nil && s.logger != nil {
		s.logger.Error("failed to send notification: " + err.Error())
	}
}
