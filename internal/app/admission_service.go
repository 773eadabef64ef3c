package app

import (
	"context"
	"fmt"

	"careerassign/internal/common"
	"careerassign/internal/domain/application"
	"careerassign/internal/domain/candidate"
	"careerassign/internal/domain/course"
	"careerassign/internal/domain/institution"
	"careerassign/internal/domain/notification"
	"careerassign/internal/match"
)

type AdmissionService struct {
	apps          application.Repository
	courses       course.Repository
	institutions  institution.Repository
	candidates    candidate.Repository
	notifications notification.Repository
	logger        Logger
}

func NewAdmissionService(apps application.Repository, courses course.Repository, institutions institution.Repository, candidates candidate.Repository, notifications notification.Repository, logger Logger) *AdmissionService {
	return &AdmissionService{
		apps:          apps,
		courses:       courses,
		institutions:  institutions,
		candidates:    candidates,
		notifications: notifications,
		logger:        logger,
	}
}

// Apply creates a pending course application once the qualification gate and
// the per-institution cap both pass.
func (s *AdmissionService) Apply(ctx context.Context, candidateID, courseID, instID common.UUID) (*application.Application, error) {
	profile, err := s.candidates.GetByUserID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	crs, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	inst, err := s.institutions.GetByID(ctx, instID)
	if err != nil {
		return nil, err
	}
	if crs.InstitutionID != instID {
		return nil, common.NewError(common.CodeValidation, "course does not belong to this institution", nil)
	}
	if !match.QualifiesForCourse(*profile, crs.Requirements) {
		return nil, common.NewError(common.CodeValidation, "you do not qualify for this course", nil)
	}
	count, err := s.apps.CountByCandidateAndInstitution(ctx, candidateID, instID)
	if err != nil {
		return nil, err
	}
	if count >= application.MaxPerInstitution {
		return nil, common.NewError(common.CodeConflict, "maximum 2 applications per institution", nil)
	}
	created, err := s.apps.Create(ctx, application.Application{
		CandidateID:     candidateID,
		CourseID:        courseID,
		InstitutionID:   instID,
		CourseName:      crs.Name,
		InstitutionName: inst.Name,
		Status:          application.StatusPending,
	})
	if err != nil {
		return nil, err
	}
	if !inst.OwnerID.IsZero() {
		s.notify(ctx, inst.OwnerID, notification.TypeNewApplication,
			fmt.Sprintf("New application for %s", crs.Name), nil)
	}
	return created, nil
}

// SetStatus is the institution-driven transition path. Admitting goes through
// an exclusive write so two admitted applications for the same candidate and
// institution can never coexist.
func (s *AdmissionService) SetStatus(ctx context.Context, appID common.UUID, next application.Status, actingInstID common.UUID) (*application.Application, error) {
	if _, ok := application.ParseStatus(string(next)); !ok {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, waiting, admitted, or rejected"})
	}
	app, err := s.apps.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app.InstitutionID != actingInstID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another institution", nil)
	}
	if next == app.Status {
		return app, nil
	}
	if !isAllowedTransition(app.Status, next) {
		return nil, common.NewError(common.CodeValidation, "invalid status transition", nil)
	}

	var updated *application.Application
	if next == application.StatusAdmitted {
		updated, err = s.apps.AdmitExclusive(ctx, appID)
	} else {
		updated, err = s.apps.UpdateStatus(ctx, appID, next)
	}
	if err != nil {
		return nil, err
	}
	s.notify(ctx, app.CandidateID, notification.TypeApplicationUpdate,
		fmt.Sprintf("Your application for %q is now: %s", app.CourseName, next), nil)
	return updated, nil
}

// SelectAdmission confirms one admitted application and runs the waitlist
// promotion cascade: every other admitted application of the candidate is
// rejected and the earliest waiting application for each vacated seat is
// promoted. The whole plan commits as one transaction; notifications go out
// only after the commit and only best-effort.
func (s *AdmissionService) SelectAdmission(ctx context.Context, candidateID, appID common.UUID) error {
	chosen, err := s.apps.GetByID(ctx, appID)
	if err != nil {
		return err
	}
	if chosen.CandidateID != candidateID {
		return common.NewError(common.CodeForbidden, "not your application", nil)
	}
	if chosen.Status != application.StatusAdmitted {
		return common.NewError(common.CodeConflict, "application is not admitted", nil)
	}

	admitted, err := s.apps.ListAdmittedByCandidate(ctx, candidateID)
	if err != nil {
		return err
	}

	var plan []application.StatusChange
	var queued []notification.Notification
	for _, other := range admitted {
		if other.ID == appID {
			continue
		}
		plan = append(plan, application.StatusChange{
			ApplicationID: other.ID,
			From:          application.StatusAdmitted,
			To:            application.StatusRejected,
		})
		queued = append(queued, notification.Notification{
			UserID: candidateID,
			Type:   notification.TypeAdmissionRejected,
			Message: fmt.Sprintf("Your application to %s at %s has been rejected.",
				other.CourseName, other.InstitutionName),
		})

		next, err := s.apps.NextWaiting(ctx, other.CourseID, other.InstitutionID)
		if err != nil {
			if common.Is(err, common.CodeNotFound) {
				continue
			}
			return err
		}
		plan = append(plan, application.StatusChange{
			ApplicationID: next.ID,
			From:          application.StatusWaiting,
			To:            application.StatusAdmitted,
		})
		queued = append(queued, notification.Notification{
			UserID: next.CandidateID,
			Type:   notification.TypeAdmissionGranted,
			Message: fmt.Sprintf("You have been admitted to %s at %s from the waiting list.",
				other.CourseName, other.InstitutionName),
		})
	}

	if len(plan) == 0 {
		return nil
	}
	if err := s.apps.ApplyPlan(ctx, plan); err != nil {
		return err
	}
	for _, n := range queued {
		s.notify(ctx, n.UserID, n.Type, n.Message, n.Metadata)
	}
	return nil
}

func (s *AdmissionService) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Application, error) {
	return s.apps.ListByCandidate(ctx, candidateID)
}

// InstitutionApplication pairs an application with a summary of its candidate,
// the shape institution staff review applications in.
type InstitutionApplication struct {
	application.Application
	Candidate CandidateSummary `json:"candidate"`
}

type CandidateSummary struct {
	ID        common.UUID          `json:"id"`
	Name      string               `json:"name"`
	GPA       float64              `json:"gpa"`
	Subjects  []string             `json:"subjects"`
	Skills    []string             `json:"skills"`
	Documents []candidate.Document `json:"documents"`
}

func (s *AdmissionService) ListByInstitution(ctx context.Context, instID common.UUID) ([]InstitutionApplication, error) {
	apps, err := s.apps.ListByInstitution(ctx, instID)
	if err != nil {
		return nil, err
	}
	return s.withCandidates(ctx, apps)
}

func (s *AdmissionService) WaitingList(ctx context.Context, instID common.UUID) ([]InstitutionApplication, error) {
	apps, err := s.apps.ListWaitingByInstitution(ctx, instID)
	if err != nil {
		return nil, err
	}
	return s.withCandidates(ctx, apps)
}

func (s *AdmissionService) withCandidates(ctx context.Context, apps []application.Application) ([]InstitutionApplication, error) {
	items := make([]InstitutionApplication, 0, len(apps))
	for _, app := range apps {
		item := InstitutionApplication{Application: app}
		profile, err := s.candidates.GetByUserID(ctx, app.CandidateID)
		if err == nil {
			item.Candidate = CandidateSummary{
				ID:        app.CandidateID,
				Name:      profile.Name,
				GPA:       profile.GPA,
				Subjects:  profile.Subjects,
				Skills:    profile.Skills,
				Documents: profile.Documents,
			}
		} else if !common.Is(err, common.CodeNotFound) {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Institution edits never move an application out of admitted or rejected;
// admitted only changes through the selection cascade.
func isAllowedTransition(from, to application.Status) bool {
	switch from {
	case application.StatusPending:
		return to == application.StatusWaiting || to == application.StatusAdmitted || to == application.StatusRejected
	case application.StatusWaiting:
		return to == application.StatusAdmitted || to == application.StatusRejected
	default:
		return false
	}
}

func (s *AdmissionService) notify(ctx context.Context, userID common.UUID, kind notification.Type, message string, metadata map[string]string) {
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
