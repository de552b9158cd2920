package enrollment

import (
	"context"
	"database/sql"

	"sis/internal/model"
)

// Repository persists enrollments and the lookup lists the enrollment form
// needs.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// PairExists reports whether the student is already enrolled in the course,
// any semester.
func (r *Repository) PairExists(ctx context.Context, studentID, courseID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM enrollment WHERE student_id = $1 AND course_id = $2)
	`, studentID, courseID).Scan(&exists)
	return exists, err
}

// Insert writes a new enrollment. The id is assigned as max+1 in the same
// statement; the unique (student_id, course_id) constraint still backstops
// concurrent duplicates.
func (r *Repository) Insert(ctx context.Context, studentID, courseID string, semesterID int) (model.Enrollment, error) {
	e := model.Enrollment{StudentID: studentID, CourseID: courseID, SemesterID: semesterID}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO enrollment (enrollment_id, student_id, course_id, semester_id)
		SELECT COALESCE(MAX(enrollment_id), 0) + 1, $1, $2, $3 FROM enrollment
		RETURNING enrollment_id
	`, studentID, courseID, semesterID).Scan(&e.EnrollmentID)
	if err != nil {
		return model.Enrollment{}, err
	}
	return e, nil
}

// ActiveCourses lists courses open for enrollment.
func (r *Repository) ActiveCourses(ctx context.Context) ([]model.Course, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT course_id, course_name, credit_hours, faculty_name, department, schedule, status
		FROM course WHERE status = 'Active' ORDER BY course_id
	`)
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

// Semesters lists all semesters, newest first.
func (r *Repository) Semesters(ctx context.Context) ([]model.Semester, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT semester_id, semester_name FROM semester ORDER BY semester_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sems []model.Semester
	for rows.Next() {
		var s model.Semester
		if err := rows.Scan(&s.SemesterID, &s.SemesterName); err != nil {
			return nil, err
		}
		sems = append(sems, s)
	}
	return sems, rows.Err()
}
