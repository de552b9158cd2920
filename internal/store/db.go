package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps sql.DB for Postgres using pgx.
type DB struct {
	Client *sql.DB
}

// NewDB creates a Postgres connection with sane defaults and ensures the
// schema exists.
func NewDB(connString string) (*DB, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &DB{Client: db}, nil
}

// migrate creates the tables on first run. Enrollment FKs are RESTRICT so
// deleting a student or course with dependent rows fails at the database.
func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS student (
		student_id     TEXT PRIMARY KEY,
		first_name     TEXT NOT NULL,
		last_name      TEXT NOT NULL,
		email          TEXT UNIQUE NOT NULL,
		password_hash  TEXT NOT NULL,
		admission_date DATE,
		department     TEXT NOT NULL DEFAULT '',
		current_year   INT NOT NULL DEFAULT 1,
		status         TEXT NOT NULL DEFAULT 'Active'
	);

	CREATE TABLE IF NOT EXISTS admin (
		email         TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS course (
		course_id    TEXT PRIMARY KEY,
		course_name  TEXT NOT NULL,
		credit_hours INT NOT NULL DEFAULT 0,
		faculty_name TEXT NOT NULL DEFAULT '',
		department   TEXT NOT NULL DEFAULT '',
		schedule     TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'Active'
	);

	CREATE TABLE IF NOT EXISTS semester (
		semester_id   INT PRIMARY KEY,
		semester_name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS enrollment (
		enrollment_id INT PRIMARY KEY,
		student_id    TEXT NOT NULL REFERENCES student(student_id) ON DELETE RESTRICT,
		course_id     TEXT NOT NULL REFERENCES course(course_id) ON DELETE RESTRICT,
		semester_id   INT NOT NULL REFERENCES semester(semester_id),
		UNIQUE (student_id, course_id)
	);

	CREATE TABLE IF NOT EXISTS grade (
		enrollment_id INT PRIMARY KEY REFERENCES enrollment(enrollment_id),
		numeric_score NUMERIC,
		letter_grade  TEXT,
		gpa_point     NUMERIC
	);

	CREATE TABLE IF NOT EXISTS attendance (
		attendance_id SERIAL PRIMARY KEY,
		enrollment_id INT NOT NULL REFERENCES enrollment(enrollment_id),
		status        TEXT NOT NULL CHECK (status IN ('Present', 'Absent', 'Late')),
		class_date    DATE NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_enrollment_student ON enrollment(student_id);
	CREATE INDEX IF NOT EXISTS idx_enrollment_course  ON enrollment(course_id);
	CREATE INDEX IF NOT EXISTS idx_attendance_enroll  ON attendance(enrollment_id);
	`
	_, err := db.Exec(schema)
	return err
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	if d == nil || d.Client == nil {
		return nil
	}
	return d.Client.Close()
}
