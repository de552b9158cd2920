package model

import "time"

// Student is a registered student. PasswordHash is never serialized.
type Student struct {
	StudentID     string     `json:"student_id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	AdmissionDate *time.Time `json:"admission_date,omitempty"`
	Department    string     `json:"department"`
	CurrentYear   int        `json:"current_year"`
	Status        string     `json:"status"` // Active, Inactive
}

// Admin is an administrative account, keyed by email.
type Admin struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Course is an offered course.
type Course struct {
	CourseID    string `json:"course_id"`
	CourseName  string `json:"course_name"`
	CreditHours int    `json:"credit_hours"`
	FacultyName string `json:"faculty_name"`
	Department  string `json:"department"`
	Schedule    string `json:"schedule,omitempty"`
	Status      string `json:"status"`
}

// Semester orders academic terms; a higher id is a later term.
type Semester struct {
	SemesterID   int    `json:"semester_id"`
	SemesterName string `json:"semester_name"`
}

// Enrollment ties a student to a course in a semester.
// (student_id, course_id) is unique across semesters.
type Enrollment struct {
	EnrollmentID int    `json:"enrollment_id"`
	StudentID    string `json:"student_id"`
	CourseID     string `json:"course_id"`
	SemesterID   int    `json:"semester_id"`
}

// Grade is the result of a graded enrollment. Fields stay nil until graded.
type Grade struct {
	EnrollmentID int      `json:"enrollment_id"`
	NumericScore *float64 `json:"numeric_score,omitempty"`
	LetterGrade  *string  `json:"letter_grade,omitempty"`
	GPAPoint     *float64 `json:"gpa_point,omitempty"`
}

// AttendanceRecord is one class-date attendance entry for an enrollment.
type AttendanceRecord struct {
	AttendanceID int       `json:"attendance_id"`
	EnrollmentID int       `json:"enrollment_id"`
	Status       string    `json:"status"` // Present, Absent, Late
	ClassDate    time.Time `json:"class_date"`
}
