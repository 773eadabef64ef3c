package handlers

import (
	"net/http"
	"time"

	"careerassign/internal/app"
	"careerassign/internal/common"
	"careerassign/internal/domain/application"
	"careerassign/internal/domain/institution"
	"careerassign/internal/http/middleware"
	"careerassign/internal/http/response"
)

type AdmissionHandler struct {
	admissions *app.AdmissionService
	catalog    *app.CatalogService
	limiter    middleware.Limiter
}

func NewAdmissionHandler(admissions *app.AdmissionService, catalog *app.CatalogService, limiter middleware.Limiter) *AdmissionHandler {
	return &AdmissionHandler{admissions: admissions, catalog: catalog, limiter: limiter}
}

type admissionApplyRequest struct {
	CourseID      string `json:"course_id"`
	InstitutionID string `json:"institution_id"`
}

type admissionStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdmissionHandler) Apply(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req admissionApplyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	courseID, err := common.ParseUUID(req.CourseID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid application", map[string]string{"course_id": "invalid uuid"}))
		return
	}
	instID, err := common.ParseUUID(req.InstitutionID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid application", map[string]string{"institution_id": "invalid uuid"}))
		return
	}
	if h.limiter != nil {
		key := "admission:apply:" + candidateID.String()
		if !h.limiter.Allow(key, 10, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.admissions.Apply(r.Context(), candidateID, courseID, instID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *AdmissionHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.admissions.ListByCandidate(r.Context(), candidateID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *AdmissionHandler) Select(w http.ResponseWriter, r *http.Request) {
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
	if err := h.admissions.SelectAdmission(r.Context(), candidateID, appID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *AdmissionHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	appID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req admissionStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	status, ok := application.ParseStatus(req.Status)
	if !ok {
		response.Error(w, common.NewValidationError("invalid status", map[string]string{"status": "unknown status"}))
		return
	}
	updated, err := h.admissions.SetStatus(r.Context(), appID, status, inst.ID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *AdmissionHandler) ListForInstitution(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	items, err := h.admissions.ListByInstitution(r.Context(), inst.ID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *AdmissionHandler) WaitingList(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	items, err := h.admissions.WaitingList(r.Context(), inst.ID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *AdmissionHandler) ownInstitution(w http.ResponseWriter, r *http.Request) (*institution.Institution, bool) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return nil, false
	}
	inst, err := h.catalog.InstitutionByOwner(r.Context(), ownerID)
	if err != nil {
		response.Error(w, err)
		return nil, false
	}
	return inst, true
}
