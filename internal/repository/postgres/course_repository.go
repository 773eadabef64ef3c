package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"careerassign/internal/common"
	"careerassign/internal/domain/course"
)

type CourseRepository struct {
	db *sql.DB
}

func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, institution_id, faculty_id, name, min_gpa, subjects, published`

func (r *CourseRepository) Create(ctx context.Context, c course.Course) (*course.Course, error) {
	c.ID = common.NewUUID()
	_, err := r.db.ExecContext(ctx, `INSERT INTO courses (id, institution_id, faculty_id, name, min_gpa, subjects, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.InstitutionID, c.FacultyID, c.Name, c.Requirements.MinGPA, pq.Array(c.Requirements.Subjects), c.Published)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create course", err)
	}
	return &c, nil
}

func (r *CourseRepository) Update(ctx context.Context, c course.Course) (*course.Course, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE courses SET name = $1, min_gpa = $2, subjects = $3 WHERE id = $4`,
		c.Name, c.Requirements.MinGPA, pq.Array(c.Requirements.Subjects), c.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update course", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "course not found", sql.ErrNoRows)
	}
	return &c, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id common.UUID) (*course.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)
	var c course.Course
	if err := row.Scan(&c.ID, &c.InstitutionID, &c.FacultyID, &c.Name, &c.Requirements.MinGPA, pq.Array(&c.Requirements.Subjects), &c.Published); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "course not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load course", err)
	}
	return &c, nil
}

func (r *CourseRepository) ListByInstitution(ctx context.Context, instID common.UUID) ([]course.Course, error) {
	return r.listWhere(ctx, `institution_id = $1`, instID)
}

func (r *CourseRepository) ListByFaculty(ctx context.Context, facultyID common.UUID) ([]course.Course, error) {
	return r.listWhere(ctx, `faculty_id = $1`, facultyID)
}

func (r *CourseRepository) ListPublished(ctx context.Context) ([]course.Course, error) {
	return r.listWhere(ctx, `published = $1`, true)
}

func (r *CourseRepository) listWhere(ctx context.Context, where string, arg any) ([]course.Course, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE `+where+` ORDER BY name`, arg)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list courses", err)
	}
	defer rows.Close()
	var items []course.Course
	for rows.Next() {
		var c course.Course
		if err := rows.Scan(&c.ID, &c.InstitutionID, &c.FacultyID, &c.Name, &c.Requirements.MinGPA, pq.Array(&c.Requirements.Subjects), &c.Published); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan course", err)
		}
		items = append(items, c)
	}
	return items, nil
}

func (r *CourseRepository) SetPublished(ctx context.Context, id common.UUID, published bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE courses SET published = $1 WHERE id = $2`, published, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update course", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "course not found", sql.ErrNoRows)
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete course", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "course not found", sql.ErrNoRows)
	}
	return nil
}
