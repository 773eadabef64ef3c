package handlers

import (
	"net/http"
	"time"

	"careerassign/internal/app"
	"careerassign/internal/common"
	"careerassign/internal/domain/job"
	"careerassign/internal/http/middleware"
	"careerassign/internal/http/response"
)

type JobHandler struct {
	jobs    *app.JobService
	limiter middleware.Limiter
}

func NewJobHandler(jobs *app.JobService, limiter middleware.Limiter) *JobHandler {
	return &JobHandler{jobs: jobs, limiter: limiter}
}

type jobRequest struct {
	Title           string   `json:"title"`
	GPAThreshold    float64  `json:"gpa_threshold"`
	ExperienceYears float64  `json:"experience_years"`
	Skills          []string `json:"skills"`
}

type jobApplyRequest struct {
	JobID string `json:"job_id"`
}

type interviewRequest struct {
	Date         string `json:"date"`
	Expectations string `json:"expectations"`
}

func (h *JobHandler) Post(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Post(r.Context(), companyID, req.Title, job.Requirements{
		GPAThreshold:    req.GPAThreshold,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.jobs.Update(r.Context(), companyID, jobID, req.Title, job.Requirements{
		GPAThreshold:    req.GPAThreshold,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), companyID, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *JobHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListByCompany(r.Context(), companyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) ListMatching(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListMatching(r.Context(), candidateID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobApplyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := common.ParseUUID(req.JobID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid application", map[string]string{"job_id": "invalid uuid"}))
		return
	}
	if h.limiter != nil {
		key := "job:apply:" + jobID.String() + ":" + candidateID.String()
		if !h.limiter.Allow(key, 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.jobs.Apply(r.Context(), candidateID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) ListOwnApplications(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListCandidateApplications(r.Context(), candidateID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) SetReady(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	appID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.SetReady(r.Context(), candidateID, appID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *JobHandler) QualifiedApplicants(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.jobs.QualifiedApplicants(r.Context(), companyID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	appID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req interviewRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid interview", map[string]string{"date": "RFC3339 date is required"}))
		return
	}
	if err := h.jobs.ScheduleInterview(r.Context(), companyID, appID, date, req.Expectations); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *JobHandler) RejectApplicant(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	appID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.RejectApplicant(r.Context(), companyID, appID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}
