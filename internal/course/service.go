package course

import (
	"context"
	"strings"

	"sis/internal/apperr"
	"sis/internal/model"
)

// Store is the persistence the service needs. *Repository implements it;
// tests substitute in-memory fakes.
type Store interface {
	List(ctx context.Context) ([]model.Course, error)
	Get(ctx context.Context, courseID string) (*model.Course, error)
	Insert(ctx context.Context, c model.Course) error
	Update(ctx context.Context, c model.Course) (bool, error)
	Delete(ctx context.Context, courseID string) (bool, error)
}

// Service validates input and maps store failures for course CRUD.
type Service struct {
	repo Store
}

// NewService creates a service backed by a store.
func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

// List returns all courses.
func (s *Service) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	return courses, nil
}

// Get returns one course or NotFound.
func (s *Service) Get(ctx context.Context, courseID string) (*model.Course, error) {
	c, err := s.repo.Get(ctx, courseID)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	if c == nil {
		return nil, apperr.New(apperr.NotFound, "Course not found.")
	}
	return c, nil
}

// Create validates required fields and inserts; a duplicate id is a
// conflict.
func (s *Service) Create(ctx context.Context, c model.Course) (*model.Course, error) {
	c.CourseID = strings.TrimSpace(c.CourseID)
	if c.CourseID == "" || c.CourseName == "" || c.CreditHours <= 0 {
		return nil, apperr.New(apperr.Validation, "course_id, course_name and positive credit_hours are required.")
	}
	if c.Status == "" {
		c.Status = "Active"
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, apperr.FromStore(err, "A course with this id already exists.", "Referenced record does not exist.")
	}
	return &c, nil
}

// Update rewrites a course. An omitted status keeps the stored one so a
// partial PUT cannot blank it out.
func (s *Service) Update(ctx context.Context, c model.Course) (*model.Course, error) {
	if c.CourseID == "" || c.CourseName == "" || c.CreditHours <= 0 {
		return nil, apperr.New(apperr.Validation, "course_name and positive credit_hours are required.")
	}
	if c.Status == "" {
		existing, err := s.repo.Get(ctx, c.CourseID)
		if err != nil {
			return nil, apperr.FromStore(err, "", "")
		}
		if existing == nil {
			return nil, apperr.New(apperr.NotFound, "Course not found.")
		}
		c.Status = existing.Status
	}
	ok, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, apperr.FromStore(err, "", "Referenced record does not exist.")
	}
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Course not found.")
	}
	return &c, nil
}

// Delete removes a course; existing enrollments block the delete.
func (s *Service) Delete(ctx context.Context, courseID string) error {
	ok, err := s.repo.Delete(ctx, courseID)
	if err != nil {
		return apperr.FromStore(err, "", "Course has existing enrollments and cannot be deleted.")
	}
	if !ok {
		return apperr.New(apperr.NotFound, "Course not found.")
	}
	return nil
}
