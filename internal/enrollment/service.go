package enrollment

import (
	"context"

	"sis/internal/apperr"
	"sis/internal/model"
)

// Store is the persistence the service needs. *Repository implements it;
// tests substitute in-memory fakes.
type Store interface {
	PairExists(ctx context.Context, studentID, courseID string) (bool, error)
	Insert(ctx context.Context, studentID, courseID string, semesterID int) (model.Enrollment, error)
	ActiveCourses(ctx context.Context) ([]model.Course, error)
	Semesters(ctx context.Context) ([]model.Semester, error)
}

// Service validates enrollment requests.
type Service struct {
	repo Store
}

// NewService creates a service backed by a store.
func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

// FormData is the lookup payload for the enrollment form.
type FormData struct {
	Courses   []model.Course   `json:"courses"`
	Semesters []model.Semester `json:"semesters"`
}

// Create enrolls a student in a course. A repeated (student, course) pair is
// a conflict; a missing student or course surfaces as a conflict from the
// foreign keys.
func (s *Service) Create(ctx context.Context, studentID, courseID string, semesterID int) (*model.Enrollment, error) {
	if studentID == "" || courseID == "" || semesterID <= 0 {
		return nil, apperr.New(apperr.Validation, "student_id, course_id and semester_id are required.")
	}
	dup, err := s.repo.PairExists(ctx, studentID, courseID)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	if dup {
		return nil, apperr.New(apperr.Conflict, "Student is already enrolled in this course.")
	}
	e, err := s.repo.Insert(ctx, studentID, courseID, semesterID)
	if err != nil {
		return nil, apperr.FromStore(err,
			"Student is already enrolled in this course.",
			"Student, course or semester does not exist.")
	}
	return &e, nil
}

// FormData returns the course and semester lookup lists.
func (s *Service) FormData(ctx context.Context) (*FormData, error) {
	courses, err := s.repo.ActiveCourses(ctx)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	semesters, err := s.repo.Semesters(ctx)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	if courses == nil {
		courses = []model.Course{}
	}
	if semesters == nil {
		semesters = []model.Semester{}
	}
	return &FormData{Courses: courses, Semesters: semesters}, nil
}
