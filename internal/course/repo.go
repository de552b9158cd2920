package course

import (
	"context"
	"database/sql"
	"errors"

	"sis/internal/model"
)

// Repository persists courses.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const courseColumns = `course_id, course_name, credit_hours, faculty_name, department, schedule, status`

// List returns all courses ordered by id.
func (r *Repository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+courseColumns+` FROM course ORDER BY course_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.CourseID, &c.CourseName, &c.CreditHours, &c.FacultyName,
			&c.Department, &c.Schedule, &c.Status); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Get returns one course, nil when absent.
func (r *Repository) Get(ctx context.Context, courseID string) (*model.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM course WHERE course_id = $1`, courseID)
	var c model.Course
	if err := row.Scan(&c.CourseID, &c.CourseName, &c.CreditHours, &c.FacultyName,
		&c.Department, &c.Schedule, &c.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Insert writes a new course.
func (r *Repository) Insert(ctx context.Context, c model.Course) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO course (course_id, course_name, credit_hours, faculty_name, department, schedule, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, c.CourseID, c.CourseName, c.CreditHours, c.FacultyName, c.Department, c.Schedule, c.Status)
	return err
}

// Update rewrites a course. Returns false when it does not exist.
func (r *Repository) Update(ctx context.Context, c model.Course) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE course
		SET course_name = $2, credit_hours = $3, faculty_name = $4, department = $5, schedule = $6, status = $7
		WHERE course_id = $1
	`, c.CourseID, c.CourseName, c.CreditHours, c.FacultyName, c.Department, c.Schedule, c.Status)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Delete removes a course. The FK RESTRICT on enrollment makes the delete
// fail while dependent rows exist.
func (r *Repository) Delete(ctx context.Context, courseID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM course WHERE course_id = $1`, courseID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
