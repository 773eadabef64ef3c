package handlers

import (
	"net/http"

	"careerassign/internal/app"
	"careerassign/internal/common"
	"careerassign/internal/domain/course"
	"careerassign/internal/domain/institution"
	"careerassign/internal/http/middleware"
	"careerassign/internal/http/response"
)

type CatalogHandler struct {
	catalog *app.CatalogService
}

func NewCatalogHandler(catalog *app.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type institutionRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type facultyRequest struct {
	Name string `json:"name"`
}

type courseRequest struct {
	FacultyID string   `json:"faculty_id"`
	Name      string   `json:"name"`
	MinGPA    float64  `json:"min_gpa"`
	Subjects  []string `json:"subjects"`
}

type publishRequest struct {
	Published bool `json:"published"`
}

func (h *CatalogHandler) CreateInstitution(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req institutionRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.catalog.CreateInstitution(r.Context(), ownerID, req.Name, req.Address)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) ListInstitutions(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListInstitutions(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) GetOwnInstitution(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	response.JSON(w, http.StatusOK, inst)
}

func (h *CatalogHandler) UpdateOwnInstitution(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	var req institutionRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.catalog.UpdateInstitution(r.Context(), inst.ID, req.Name, req.Address)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteOwnInstitution(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	if err := h.catalog.DeleteInstitution(r.Context(), inst.ID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) CreateFaculty(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	var req facultyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.catalog.CreateFaculty(r.Context(), inst.ID, req.Name)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) ListFaculties(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	items, err := h.catalog.ListFaculties(r.Context(), inst.ID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) RenameFaculty(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	facultyID, err := idFromPath(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req facultyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.catalog.RenameFaculty(r.Context(), inst.ID, facultyID, req.Name)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteFaculty(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	facultyID, err := idFromPath(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.catalog.DeleteFaculty(r.Context(), inst.ID, facultyID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	var req courseRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	facultyID, err := common.ParseUUID(req.FacultyID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid course", map[string]string{"faculty_id": "invalid uuid"}))
		return
	}
	created, err := h.catalog.CreateCourse(r.Context(), inst.ID, facultyID, req.Name, course.Requirements{
		MinGPA:   req.MinGPA,
		Subjects: req.Subjects,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) ListOwnCourses(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	items, err := h.catalog.ListCourses(r.Context(), inst.ID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) ListPublishedCourses(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListPublishedCourses(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	courseID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req courseRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.catalog.UpdateCourse(r.Context(), inst.ID, courseID, req.Name, course.Requirements{
		MinGPA:   req.MinGPA,
		Subjects: req.Subjects,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CatalogHandler) PublishCourse(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	courseID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req publishRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.catalog.PublishCourse(r.Context(), inst.ID, courseID, req.Published); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.ownInstitution(w, r)
	if !ok {
		return
	}
	courseID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.catalog.DeleteCourse(r.Context(), inst.ID, courseID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) AdminUpdateInstitution(w http.ResponseWriter, r *http.Request) {
	instID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req institutionRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.catalog.UpdateInstitution(r.Context(), instID, req.Name, req.Address)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CatalogHandler) AdminDeleteInstitution(w http.ResponseWriter, r *http.Request) {
	instID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.catalog.DeleteInstitution(r.Context(), instID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) ownInstitution(w http.ResponseWriter, r *http.Request) (*institution.Institution, bool) {
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
