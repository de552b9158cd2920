package stats

import (
	"context"
	"database/sql"

	"sis/internal/model"
)

// Repository reads the system-wide aggregate rows.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Counts holds the headline dashboard counters.
type Counts struct {
	ActiveStudents int
	ActiveCourses  int
	FacultyCount   int
}

// Counts returns active student/course counts and the distinct faculty
// count in one round trip.
func (r *Repository) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM student WHERE status = 'Active'),
			(SELECT COUNT(*) FROM course WHERE status = 'Active'),
			(SELECT COUNT(DISTINCT faculty_name) FROM course WHERE faculty_name <> '')
	`).Scan(&c.ActiveStudents, &c.ActiveCourses, &c.FacultyCount)
	return c, err
}

// AttendanceCounts returns system-wide attended and total class counts.
// Present and Late count as attended.
func (r *Repository) AttendanceCounts(ctx context.Context) (attended, total int, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('Present', 'Late')),
			COUNT(*)
		FROM attendance
	`).Scan(&attended, &total)
	return attended, total, err
}

// StudentCGPAs returns each student's average gpa_point over their graded
// enrollments, any semester. Students with no graded enrollment are absent.
func (r *Repository) StudentCGPAs(ctx context.Context) ([]float64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT AVG(g.gpa_point)
		FROM enrollment e
		JOIN grade g ON g.enrollment_id = e.enrollment_id
		WHERE g.gpa_point IS NOT NULL
		GROUP BY e.student_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ActiveStudentsByDepartment counts active students per department.
func (r *Repository) ActiveStudentsByDepartment(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT department, COUNT(*) FROM student WHERE status = 'Active' GROUP BY department
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var dept string
		var n int
		if err := rows.Scan(&dept, &n); err != nil {
			return nil, err
		}
		counts[dept] = n
	}
	return counts, rows.Err()
}

// CourseOverview is a course annotated with its live enrollment count.
type CourseOverview struct {
	model.Course
	EnrollmentCount int `json:"enrollment_count"`
}

// CoursesWithEnrollments lists every course with its enrollment count.
func (r *Repository) CoursesWithEnrollments(ctx context.Context) ([]CourseOverview, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.course_id, c.course_name, c.credit_hours, c.faculty_name, c.department, c.schedule, c.status,
		       COUNT(e.enrollment_id)
		FROM course c
		LEFT JOIN enrollment e ON e.course_id = c.course_id
		GROUP BY c.course_id, c.course_name, c.credit_hours, c.faculty_name, c.department, c.schedule, c.status
		ORDER BY c.course_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CourseOverview
	for rows.Next() {
		var co CourseOverview
		if err := rows.Scan(&co.CourseID, &co.CourseName, &co.CreditHours, &co.FacultyName,
			&co.Department, &co.Schedule, &co.Status, &co.EnrollmentCount); err != nil {
			return nil, err
		}
		out = append(out, co)
	}
	return out, rows.Err()
}

// TrendPoint is one semester's enrollment count.
type TrendPoint struct {
	SemesterID   int    `json:"semester_id"`
	SemesterName string `json:"semester_name"`
	Enrollments  int    `json:"enrollments"`
}

// EnrollmentsBySemester counts enrollments per semester in semester order.
func (r *Repository) EnrollmentsBySemester(ctx context.Context) ([]TrendPoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.semester_id, s.semester_name, COUNT(e.enrollment_id)
		FROM semester s
		LEFT JOIN enrollment e ON e.semester_id = s.semester_id
		GROUP BY s.semester_id, s.semester_name
		ORDER BY s.semester_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TrendPoint
	for rows.Next() {
		var tp TrendPoint
		if err := rows.Scan(&tp.SemesterID, &tp.SemesterName, &tp.Enrollments); err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, rows.Err()
}

// weekdayCounts maps ISO weekday (1=Monday) to attended/total counts.
type weekdayCounts struct {
	attended int
	total    int
}

// AttendanceByWeekday returns attended/total counts keyed by ISO weekday.
func (r *Repository) AttendanceByWeekday(ctx context.Context) (map[int]weekdayCounts, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT EXTRACT(ISODOW FROM class_date)::int,
		       COUNT(*) FILTER (WHERE status IN ('Present', 'Late')),
		       COUNT(*)
		FROM attendance
		GROUP BY 1
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[int]weekdayCounts)
	for rows.Next() {
		var day int
		var wc weekdayCounts
		if err := rows.Scan(&day, &wc.attended, &wc.total); err != nil {
			return nil, err
		}
		counts[day] = wc
	}
	return counts, rows.Err()
}
