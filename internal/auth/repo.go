package auth

import (
	"context"
	"database/sql"
	"errors"

	"sis/internal/model"
)

// Repository looks up credential rows by role-specific key.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// FindStudent returns the student row for a login attempt, nil when the id
// is unknown.
func (r *Repository) FindStudent(ctx context.Context, studentID string) (*model.Student, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT student_id, first_name, last_name, email, password_hash, admission_date, department, current_year, status
		FROM student WHERE student_id = $1
	`, studentID)
	var st model.Student
	if err := row.Scan(&st.StudentID, &st.FirstName, &st.LastName, &st.Email, &st.PasswordHash,
		&st.AdmissionDate, &st.Department, &st.CurrentYear, &st.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

// FindAdmin returns the admin row for a login attempt, nil when the email is
// unknown.
func (r *Repository) FindAdmin(ctx context.Context, email string) (*model.Admin, error) {
	row := r.db.QueryRowContext(ctx, `SELECT email, password_hash FROM admin WHERE email = $1`, email)
	var a model.Admin
	if err := row.Scan(&a.Email, &a.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
