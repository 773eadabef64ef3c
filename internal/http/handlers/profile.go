package handlers

import (
	"net/http"

	"careerassign/internal/app"
	"careerassign/internal/domain/candidate"
	"careerassign/internal/domain/company"
	"careerassign/internal/http/middleware"
	"careerassign/internal/http/response"
)

type ProfileHandler struct {
	profiles *app.ProfileService
}

func NewProfileHandler(profiles *app.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type candidateProfileRequest struct {
	Name             string   `json:"name"`
	GPA              float64  `json:"gpa"`
	ExperienceYears  float64  `json:"experience_years"`
	Subjects         []string `json:"subjects"`
	Skills           []string `json:"skills"`
	CompletedStudies bool     `json:"completed_studies"`
}

type documentRequest struct {
	Type     string `json:"type"`
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
}

type companyProfileRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ProfileHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	profile, err := h.profiles.GetCandidate(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpsertCandidate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req candidateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	saved, err := h.profiles.UpsertCandidate(r.Context(), candidate.Profile{
		UserID:           userID,
		Name:             req.Name,
		GPA:              req.GPA,
		ExperienceYears:  req.ExperienceYears,
		Subjects:         req.Subjects,
		Skills:           req.Skills,
		CompletedStudies: req.CompletedStudies,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, saved)
}

func (h *ProfileHandler) AddDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req documentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	doc, err := h.profiles.AddDocument(r.Context(), userID, candidate.Document{
		Type:     candidate.DocumentType(req.Type),
		Filename: req.Filename,
		URL:      req.URL,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, doc)
}

func (h *ProfileHandler) RemoveDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	docID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.profiles.RemoveDocument(r.Context(), userID, docID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

func (h *ProfileHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	profile, err := h.profiles.GetCompany(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpsertCompany(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req companyProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	saved, err := h.profiles.UpsertCompany(r.Context(), company.Profile{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, saved)
}
