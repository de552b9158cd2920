package enrollment

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
	cases := []struct {
		studentID, courseID string
		semesterID          int
	}{
		{"", "CS101", 1},
		{"S1001", "", 1},
		{"S1001", "CS101", 0},
		{"", "", 0},
	}
	for _, tc := range cases {
		_, err := s.Create(context.Background(), tc.studentID, tc.courseID, tc.semesterID)
		if apperr.Status(err) != http.StatusBadRequest {
			t.Fatalf("expected 400 for %+v, got %d (%v)", tc, apperr.Status(err), err)
		}
	}
}

// fakeStore tracks inserted pairs so the duplicate branches are reachable
// without a database.
type fakeStore struct {
	pairs       map[string]bool
	insertErr   error
	insertCalls int
}

func pairKey(studentID, courseID string) string { return studentID + "/" + courseID }

func (f *fakeStore) PairExists(_ context.Context, studentID, courseID string) (bool, error) {
	return f.pairs[pairKey(studentID, courseID)], nil
}

func (f *fakeStore) Insert(_ context.Context, studentID, courseID string, semesterID int) (model.Enrollment, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return model.Enrollment{}, f.insertErr
	}
	f.pairs[pairKey(studentID, courseID)] = true
	return model.Enrollment{
		EnrollmentID: f.insertCalls,
		StudentID:    studentID,
		CourseID:     courseID,
		SemesterID:   semesterID,
	}, nil
}

func (f *fakeStore) ActiveCourses(_ context.Context) ([]model.Course, error) { return nil, nil }

func (f *fakeStore) Semesters(_ context.Context) ([]model.Semester, error) { return nil, nil }

func TestCreateThenDuplicateConflicts(t *testing.T) {
	store := &fakeStore{pairs: map[string]bool{}}
	s := NewService(store)

	e, err := s.Create(context.Background(), "S1001", "CS101", 1)
	if err != nil {
		t.Fatalf("first enrollment: %v", err)
	}
	if e.EnrollmentID == 0 {
		t.Fatal("enrollment id not assigned")
	}

	_, err = s.Create(context.Background(), "S1001", "CS101", 1)
	if apperr.Status(err) != http.StatusConflict {
		t.Fatalf("expected 409 on repeat, got %d (%v)", apperr.Status(err), err)
	}
	if got := apperr.PublicMessage(err); got != "Student is already enrolled in this course." {
		t.Fatalf("unexpected message: %q", got)
	}
	if store.insertCalls != 1 {
		t.Fatalf("second insert attempted, calls=%d", store.insertCalls)
	}
}

func TestCreateMapsUniqueViolation(t *testing.T) {
	// A concurrent insert can slip past the pre-check; the constraint error
	// must surface as the same conflict.
	store := &fakeStore{
		pairs:     map[string]bool{},
		insertErr: &pgconn.PgError{Code: "23505", ConstraintName: "enrollment_student_id_course_id_key"},
	}
	s := NewService(store)

	_, err := s.Create(context.Background(), "S1001", "CS101", 1)
	if apperr.Status(err) != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%v)", apperr.Status(err), err)
	}
	if got := apperr.PublicMessage(err); got != "Student is already enrolled in this course." {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestCreateMapsMissingReference(t *testing.T) {
	store := &fakeStore{
		pairs:     map[string]bool{},
		insertErr: &pgconn.PgError{Code: "23503", ConstraintName: "enrollment_student_id_fkey"},
	}
	s := NewService(store)

	_, err := s.Create(context.Background(), "S9999", "CS101", 1)
	if apperr.Status(err) != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%v)", apperr.Status(err), err)
	}
	if got := apperr.PublicMessage(err); got != "Student, course or semester does not exist." {
		t.Fatalf("unexpected message: %q", got)
	}
}
