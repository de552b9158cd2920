package student

import (
	"context"
	"strings"
	"time"

	"sis/internal/apperr"
	"sis/internal/auth"
	"sis/internal/metrics"
	"sis/internal/model"
)

// Store is the persistence the service needs. *Repository implements it;
// tests substitute in-memory fakes.
type Store interface {
	List(ctx context.Context) ([]model.Student, error)
	Get(ctx context.Context, studentID string) (*model.Student, error)
	Insert(ctx context.Context, st model.Student) error
	Update(ctx context.Context, st model.Student) (bool, error)
	Delete(ctx context.Context, studentID string) (bool, error)
	GradeRows(ctx context.Context, studentID string) ([]metrics.CourseGrade, error)
	ClassRecords(ctx context.Context, studentID string) ([]metrics.ClassRecord, error)
	RecentAttendance(ctx context.Context, studentID string, limit int) ([]RecentEntry, error)
}

// Service validates input and combines repository rows into the derived
// per-student numbers.
type Service struct {
	repo       Store
	bcryptCost int
}

// NewService creates a service backed by a store.
func NewService(repo Store, bcryptCost int) *Service {
	return &Service{repo: repo, bcryptCost: bcryptCost}
}

// CreateInput carries a new student; the password arrives in plaintext and
// is hashed before storage.
type CreateInput struct {
	StudentID     string
	FirstName     string
	LastName      string
	Email         string
	Password      string
	AdmissionDate *time.Time
	Department    string
	CurrentYear   int
	Status        string
}

// Dashboard is the student landing-page payload. SGPA and attendance are
// scoped to the latest semester; formatting happens at the HTTP boundary.
type Dashboard struct {
	Student              model.Student
	SGPA                 float64
	AttendanceRate       float64
	EnrolledCoursesCount int
}

// GradeDetail is one latest-semester enrollment with its grade.
type GradeDetail struct {
	CourseID     string   `json:"course_id"`
	CourseName   string   `json:"course_name"`
	CreditHours  int      `json:"credit_hours"`
	NumericScore *float64 `json:"numeric_score"`
	LetterGrade  *string  `json:"letter_grade"`
	GPAPoint     *float64 `json:"gpa_point"`
}

// CurrentGrades is the grades endpoint payload.
type CurrentGrades struct {
	Summary metrics.GradeSummary
	Details []GradeDetail
}

// CurrentAttendance is the attendance endpoint payload.
type CurrentAttendance struct {
	Summary metrics.AttendanceSummary
	Details []metrics.CourseAttendance
	Recent  []RecentEntry
}

// List returns all students.
func (s *Service) List(ctx context.Context) ([]model.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	return students, nil
}

// Get returns one student or NotFound.
func (s *Service) Get(ctx context.Context, studentID string) (*model.Student, error) {
	st, err := s.repo.Get(ctx, studentID)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	if st == nil {
		return nil, apperr.New(apperr.NotFound, "Student not found.")
	}
	return st, nil
}

// Create validates required fields, hashes the password, and inserts.
// Duplicate ids or emails surface as conflicts.
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.Student, error) {
	in.StudentID = strings.TrimSpace(in.StudentID)
	if in.StudentID == "" || in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return nil, apperr.New(apperr.Validation, "student_id, first_name, last_name, email and password are required.")
	}
	if in.Status == "" {
		in.Status = "Active"
	}
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "An internal server error occurred.", err)
	}
	st := model.Student{
		StudentID:     in.StudentID,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		PasswordHash:  hash,
		AdmissionDate: in.AdmissionDate,
		Department:    in.Department,
		CurrentYear:   in.CurrentYear,
		Status:        in.Status,
	}
	if err := s.repo.Insert(ctx, st); err != nil {
		return nil, apperr.FromStore(err, "A student with this id or email already exists.", "Referenced record does not exist.")
	}
	return &st, nil
}

// Update rewrites a student's profile fields. An omitted status keeps the
// stored one so a partial PUT cannot blank it out.
func (s *Service) Update(ctx context.Context, st model.Student) (*model.Student, error) {
	if st.StudentID == "" || st.FirstName == "" || st.LastName == "" || st.Email == "" {
		return nil, apperr.New(apperr.Validation, "first_name, last_name and email are required.")
	}
	if st.Status == "" {
		existing, err := s.repo.Get(ctx, st.StudentID)
		if err != nil {
			return nil, apperr.FromStore(err, "", "")
		}
		if existing == nil {
			return nil, apperr.New(apperr.NotFound, "Student not found.")
		}
		st.Status = existing.Status
	}
	ok, err := s.repo.Update(ctx, st)
	if err != nil {
		return nil, apperr.FromStore(err, "A student with this email already exists.", "Referenced record does not exist.")
	}
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Student not found.")
	}
	return s.Get(ctx, st.StudentID)
}

// Delete removes a student; existing enrollments block the delete.
func (s *Service) Delete(ctx context.Context, studentID string) error {
	ok, err := s.repo.Delete(ctx, studentID)
	if err != nil {
		return apperr.FromStore(err, "", "Student has existing enrollments and cannot be deleted.")
	}
	if !ok {
		return apperr.New(apperr.NotFound, "Student not found.")
	}
	return nil
}

// Dashboard combines profile, latest-semester SGPA, attendance rate, and
// enrolled-course count. A student with no enrollments gets zeros.
func (s *Service) Dashboard(ctx context.Context, studentID string) (*Dashboard, error) {
	st, err := s.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	grades, err := s.repo.GradeRows(ctx, studentID)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	classes, err := s.repo.ClassRecords(ctx, studentID)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}

	latest := metrics.LatestSemester(grades)
	current := metrics.SemesterGrades(grades, latest)
	attendance := metrics.Attendance(metrics.SemesterClasses(classes, latest))

	return &Dashboard{
		Student:              *st,
		SGPA:                 metrics.SGPA(current),
		AttendanceRate:       attendance.Rate,
		EnrolledCoursesCount: len(current),
	}, nil
}

// CurrentGrades summarizes the latest semester's grades with a per-course
// breakdown.
func (s *Service) CurrentGrades(ctx context.Context, studentID string) (*CurrentGrades, error) {
	if _, err := s.Get(ctx, studentID); err != nil {
		return nil, err
	}
	grades, err := s.repo.GradeRows(ctx, studentID)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	current := metrics.SemesterGrades(grades, metrics.LatestSemester(grades))

	details := make([]GradeDetail, 0, len(current))
	for _, cg := range current {
		details = append(details, GradeDetail{
			CourseID:     cg.CourseID,
			CourseName:   cg.CourseName,
			CreditHours:  cg.CreditHours,
			NumericScore: cg.NumericScore,
			LetterGrade:  cg.LetterGrade,
			GPAPoint:     cg.GPAPoint,
		})
	}
	return &CurrentGrades{Summary: metrics.Grades(current), Details: details}, nil
}

// CurrentAttendance summarizes the latest semester's attendance with a
// per-course breakdown and the recent feed.
func (s *Service) CurrentAttendance(ctx context.Context, studentID string) (*CurrentAttendance, error) {
	if _, err := s.Get(ctx, studentID); err != nil {
		return nil, err
	}
	grades, err := s.repo.GradeRows(ctx, studentID)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	classes, err := s.repo.ClassRecords(ctx, studentID)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	recent, err := s.repo.RecentAttendance(ctx, studentID, 10)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}

	current := metrics.SemesterClasses(classes, metrics.LatestSemester(grades))
	return &CurrentAttendance{
		Summary: metrics.Attendance(current),
		Details: metrics.AttendanceByCourse(current),
		Recent:  recent,
	}, nil
}
