package student

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sis/internal/metrics"
	"sis/internal/model"
)

// Repository persists students and reads the joined rows the aggregator
// consumes.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const studentColumns = `student_id, first_name, last_name, email, admission_date, department, current_year, status`

func scanStudent(row interface{ Scan(...any) error }) (model.Student, error) {
	var st model.Student
	err := row.Scan(&st.StudentID, &st.FirstName, &st.LastName, &st.Email,
		&st.AdmissionDate, &st.Department, &st.CurrentYear, &st.Status)
	return st, err
}

// List returns all students ordered by id.
func (r *Repository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+studentColumns+` FROM student ORDER BY student_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var students []model.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

// Get returns one student, nil when absent.
func (r *Repository) Get(ctx context.Context, studentID string) (*model.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM student WHERE student_id = $1`, studentID)
	st, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

// Insert writes a new student with a prehashed password.
func (r *Repository) Insert(ctx context.Context, st model.Student) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO student (student_id, first_name, last_name, email, password_hash, admission_date, department, current_year, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, st.StudentID, st.FirstName, st.LastName, st.Email, st.PasswordHash,
		st.AdmissionDate, st.Department, st.CurrentYear, st.Status)
	return err
}

// Update rewrites the mutable profile fields. Returns false when the student
// does not exist.
func (r *Repository) Update(ctx context.Context, st model.Student) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE student
		SET first_name = $2, last_name = $3, email = $4, department = $5, current_year = $6, status = $7
		WHERE student_id = $1
	`, st.StudentID, st.FirstName, st.LastName, st.Email, st.Department, st.CurrentYear, st.Status)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Delete removes a student. The FK RESTRICT on enrollment makes the delete
// fail while dependent rows exist.
func (r *Repository) Delete(ctx context.Context, studentID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM student WHERE student_id = $1`, studentID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// GradeRows returns every enrollment of the student joined with its course
// and grade, all semesters. Ungraded enrollments come back with nil grade
// fields.
func (r *Repository) GradeRows(ctx context.Context, studentID string) ([]metrics.CourseGrade, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.enrollment_id, e.semester_id, c.course_id, c.course_name, c.credit_hours,
		       g.numeric_score, g.letter_grade, g.gpa_point
		FROM enrollment e
		JOIN course c ON c.course_id = e.course_id
		LEFT JOIN grade g ON g.enrollment_id = e.enrollment_id
		WHERE e.student_id = $1
		ORDER BY c.course_id
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []metrics.CourseGrade
	for rows.Next() {
		var cg metrics.CourseGrade
		var score, point sql.NullFloat64
		var letter sql.NullString
		if err := rows.Scan(&cg.EnrollmentID, &cg.SemesterID, &cg.CourseID, &cg.CourseName,
			&cg.CreditHours, &score, &letter, &point); err != nil {
			return nil, err
		}
		if score.Valid {
			cg.NumericScore = &score.Float64
		}
		if letter.Valid {
			cg.LetterGrade = &letter.String
		}
		if point.Valid {
			cg.GPAPoint = &point.Float64
		}
		out = append(out, cg)
	}
	return out, rows.Err()
}

// ClassRecords returns every attendance entry of the student joined with
// its course, all semesters.
func (r *Repository) ClassRecords(ctx context.Context, studentID string) ([]metrics.ClassRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.course_id, c.course_name, e.semester_id, a.status, a.class_date
		FROM attendance a
		JOIN enrollment e ON e.enrollment_id = a.enrollment_id
		JOIN course c ON c.course_id = e.course_id
		WHERE e.student_id = $1
		ORDER BY a.class_date
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []metrics.ClassRecord
	for rows.Next() {
		var cr metrics.ClassRecord
		if err := rows.Scan(&cr.CourseID, &cr.CourseName, &cr.SemesterID, &cr.Status, &cr.ClassDate); err != nil {
			return nil, err
		}
		out = append(out, cr)
	}
	return out, rows.Err()
}

// RecentAttendance returns the newest attendance entries for the student.
func (r *Repository) RecentAttendance(ctx context.Context, studentID string, limit int) ([]RecentEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.course_id, c.course_name, a.status, a.class_date
		FROM attendance a
		JOIN enrollment e ON e.enrollment_id = a.enrollment_id
		JOIN course c ON c.course_id = e.course_id
		WHERE e.student_id = $1
		ORDER BY a.class_date DESC, a.attendance_id DESC
		LIMIT $2
	`, studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RecentEntry
	for rows.Next() {
		var re RecentEntry
		if err := rows.Scan(&re.CourseID, &re.CourseName, &re.Status, &re.ClassDate); err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, rows.Err()
}

// RecentEntry is one row of the recent-attendance feed.
type RecentEntry struct {
	CourseID   string    `json:"course_id"`
	CourseName string    `json:"course_name"`
	Status     string    `json:"status"`
	ClassDate  time.Time `json:"class_date"`
}
