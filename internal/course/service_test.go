package course

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"sis/internal/apperr"
	"sis/internal/model"
)

func TestCreateRejectsMissingFields(t *testing.T) {
	// Validation happens before any repository access.
	s := NewService(nil)
	cases := []model.Course{
		{},
		{CourseID: "CS101"},
		{CourseID: "CS101", CourseName: "Programming"},
		{CourseID: "CS101", CourseName: "Programming", CreditHours: -1},
		{CourseName: "Programming", CreditHours: 4},
	}
	for _, c := range cases {
		_, err := s.Create(context.Background(), c)
		if apperr.Status(err) != http.StatusBadRequest {
			t.Fatalf("expected 400 for %+v, got %d (%v)", c, apperr.Status(err), err)
		}
	}
}

func TestUpdateRejectsMissingFields(t *testing.T) {
	s := NewService(nil)
	_, err := s.Update(context.Background(), model.Course{CourseID: "CS101"})
	if apperr.Status(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%v)", apperr.Status(err), err)
	}
}

// fakeStore backs the service with a map so conflict and not-found paths are
// reachable without a database.
type fakeStore struct {
	courses   map[string]model.Course
	deleteErr error
	updated   *model.Course
}

func (f *fakeStore) List(_ context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, courseID string) (*model.Course, error) {
	c, ok := f.courses[courseID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeStore) Insert(_ context.Context, c model.Course) error {
	f.courses[c.CourseID] = c
	return nil
}

func (f *fakeStore) Update(_ context.Context, c model.Course) (bool, error) {
	if _, ok := f.courses[c.CourseID]; !ok {
		return false, nil
	}
	f.courses[c.CourseID] = c
	f.updated = &c
	return true, nil
}

func (f *fakeStore) Delete(_ context.Context, courseID string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if _, ok := f.courses[courseID]; !ok {
		return false, nil
	}
	delete(f.courses, courseID)
	return true, nil
}

func TestDeleteBlockedByEnrollments(t *testing.T) {
	store := &fakeStore{
		courses:   map[string]model.Course{"CS101": {CourseID: "CS101", CourseName: "Programming", CreditHours: 4, Status: "Active"}},
		deleteErr: &pgconn.PgError{Code: "23503", ConstraintName: "enrollment_course_id_fkey"},
	}
	s := NewService(store)

	err := s.Delete(context.Background(), "CS101")
	if apperr.Status(err) != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%v)", apperr.Status(err), err)
	}
	if got := apperr.PublicMessage(err); got != "Course has existing enrollments and cannot be deleted." {
		t.Fatalf("unexpected message: %q", got)
	}
	if _, ok := store.courses["CS101"]; !ok {
		t.Fatal("course removed despite the constraint failure")
	}
}

func TestDeleteRemovesCourse(t *testing.T) {
	store := &fakeStore{courses: map[string]model.Course{"CS101": {CourseID: "CS101"}}}
	s := NewService(store)

	if err := s.Delete(context.Background(), "CS101"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(context.Background(), "CS101"); apperr.Status(err) != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d (%v)", apperr.Status(err), err)
	}
}

func TestUpdateKeepsStatusWhenOmitted(t *testing.T) {
	store := &fakeStore{courses: map[string]model.Course{
		"CS101": {CourseID: "CS101", CourseName: "Programming", CreditHours: 4, Status: "Inactive"},
	}}
	s := NewService(store)

	got, err := s.Update(context.Background(), model.Course{CourseID: "CS101", CourseName: "Programming II", CreditHours: 4})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != "Inactive" {
		t.Fatalf("expected stored status to survive, got %q", got.Status)
	}
	if store.updated.Status != "Inactive" {
		t.Fatalf("store written with status %q", store.updated.Status)
	}
}
