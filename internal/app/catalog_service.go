package app

import (
	"context"
	"strings"

	"careerassign/internal/common"
	"careerassign/internal/domain/application"
	"careerassign/internal/domain/course"
	"careerassign/internal/domain/institution"
)

// CatalogService covers the plain CRUD around institutions, faculties and
// courses, plus the delete guards that keep the ledger referentially sound.
type CatalogService struct {
	institutions institution.Repository
	faculties    institution.FacultyRepository
	courses      course.Repository
	apps         application.Repository
}

func NewCatalogService(institutions institution.Repository, faculties institution.FacultyRepository, courses course.Repository, apps application.Repository) *CatalogService {
	return &CatalogService{institutions: institutions, faculties: faculties, courses: courses, apps: apps}
}

func (s *CatalogService) CreateInstitution(ctx context.Context, ownerID common.UUID, name, address string) (*institution.Institution, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" || address == "" {
		return nil, common.NewValidationError("invalid institution", map[string]string{"name": "name and address are required"})
	}
	if !ownerID.IsZero() {
		if _, err := s.institutions.FindByOwner(ctx, ownerID); err == nil {
			return nil, common.NewError(common.CodeConflict, "owner already has an institution", nil)
		} else if !common.Is(err, common.CodeNotFound) {
			return nil, err
		}
	}
	return s.institutions.Create(ctx, institution.Institution{Name: name, Address: address, OwnerID: ownerID})
}

func (s *CatalogService) ListInstitutions(ctx context.Context) ([]institution.Institution, error) {
	return s.institutions.List(ctx)
}

func (s *CatalogService) InstitutionByOwner(ctx context.Context, ownerID common.UUID) (*institution.Institution, error) {
	return s.institutions.FindByOwner(ctx, ownerID)
}

func (s *CatalogService) UpdateInstitution(ctx context.Context, id common.UUID, name, address string) (*institution.Institution, error) {
	inst, err := s.institutions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		inst.Name = name
	}
	if address = strings.TrimSpace(address); address != "" {
		inst.Address = address
	}
	return s.institutions.Update(ctx, *inst)
}

func (s *CatalogService) DeleteInstitution(ctx context.Context, id common.UUID) error {
	apps, err := s.apps.ListByInstitution(ctx, id)
	if err != nil {
		return err
	}
	if len(apps) > 0 {
		return common.NewError(common.CodeConflict, "cannot delete institution with applications", nil)
	}
	return s.institutions.Delete(ctx, id)
}

func (s *CatalogService) CreateFaculty(ctx context.Context, instID common.UUID, name string) (*institution.Faculty, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewValidationError("invalid faculty", map[string]string{"name": "name is required"})
	}
	if _, err := s.institutions.GetByID(ctx, instID); err != nil {
		return nil, err
	}
	return s.faculties.Create(ctx, institution.Faculty{InstitutionID: instID, Name: name})
}

func (s *CatalogService) ListFaculties(ctx context.Context, instID common.UUID) ([]institution.Faculty, error) {
	return s.faculties.ListByInstitution(ctx, instID)
}

func (s *CatalogService) RenameFaculty(ctx context.Context, instID, facultyID common.UUID, name string) (*institution.Faculty, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewValidationError("invalid faculty", map[string]string{"name": "name is required"})
	}
	faculty, err := s.faculties.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if faculty.InstitutionID != instID {
		return nil, common.NewError(common.CodeForbidden, "faculty belongs to another institution", nil)
	}
	faculty.Name = name
	return s.faculties.Update(ctx, *faculty)
}

func (s *CatalogService) DeleteFaculty(ctx context.Context, instID, facultyID common.UUID) error {
	faculty, err := s.faculties.GetByID(ctx, facultyID)
	if err != nil {
		return err
	}
	if faculty.InstitutionID != instID {
		return common.NewError(common.CodeForbidden, "faculty belongs to another institution", nil)
	}
	courses, err := s.courses.ListByFaculty(ctx, facultyID)
	if err != nil {
		return err
	}
	if len(courses) > 0 {
		return common.NewError(common.CodeConflict, "cannot delete faculty with courses", nil)
	}
	return s.faculties.Delete(ctx, facultyID)
}

func (s *CatalogService) CreateCourse(ctx context.Context, instID, facultyID common.UUID, name string, req course.Requirements) (*course.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" || facultyID.IsZero() {
		return nil, common.NewValidationError("invalid course", map[string]string{"name": "name and faculty are required"})
	}
	if req.MinGPA < 0 || req.MinGPA > 5 {
		return nil, common.NewValidationError("invalid course", map[string]string{"min_gpa": "min gpa must be between 0 and 5"})
	}
	faculty, err := s.faculties.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if faculty.InstitutionID != instID {
		return nil, common.NewError(common.CodeForbidden, "faculty belongs to another institution", nil)
	}
	req.Subjects = cleanSkills(req.Subjects)
	return s.courses.Create(ctx, course.Course{
		InstitutionID: instID,
		FacultyID:     facultyID,
		Name:          name,
		Requirements:  req,
	})
}

func (s *CatalogService) ListCourses(ctx context.Context, instID common.UUID) ([]course.Course, error) {
	return s.courses.ListByInstitution(ctx, instID)
}

func (s *CatalogService) ListPublishedCourses(ctx context.Context) ([]course.Course, error) {
	return s.courses.ListPublished(ctx)
}

// UpdateCourse edits name and requirements. Requirement edits do not rescore
// or regate existing applications; scores and admissions are snapshots.
func (s *CatalogService) UpdateCourse(ctx context.Context, instID, courseID common.UUID, name string, req course.Requirements) (*course.Course, error) {
	crs, err := s.ownedCourse(ctx, instID, courseID)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		crs.Name = name
	}
	if req.MinGPA < 0 || req.MinGPA > 5 {
		return nil, common.NewValidationError("invalid course", map[string]string{"min_gpa": "min gpa must be between 0 and 5"})
	}
	req.Subjects = cleanSkills(req.Subjects)
	crs.Requirements = req
	return s.courses.Update(ctx, *crs)
}

func (s *CatalogService) PublishCourse(ctx context.Context, instID, courseID common.UUID, published bool) error {
	if _, err := s.ownedCourse(ctx, instID, courseID); err != nil {
		return err
	}
	return s.courses.SetPublished(ctx, courseID, published)
}

func (s *CatalogService) DeleteCourse(ctx context.Context, instID, courseID common.UUID) error {
	if _, err := s.ownedCourse(ctx, instID, courseID); err != nil {
		return err
	}
	apps, err := s.apps.ListByCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if len(apps) > 0 {
		return common.NewError(common.CodeConflict, "cannot delete course with applications", nil)
	}
	return s.courses.Delete(ctx, courseID)
}

func (s *CatalogService) ownedCourse(ctx context.Context, instID, courseID common.UUID) (*course.Course, error) {
	crs, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if crs.InstitutionID != instID {
		return nil, common.NewError(common.CodeForbidden, "course belongs to another institution", nil)
	}
	return crs, nil
}
