package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sis/internal/model"
	"sis/internal/student"
)

type createStudentRequest struct {
	StudentID     string `json:"student_id" binding:"required"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	AdmissionDate string `json:"admission_date"`
	Department    string `json:"department"`
	CurrentYear   int    `json:"current_year"`
	Status        string `json:"status"`
}

type updateStudentRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Department  string `json:"department"`
	CurrentYear int    `json:"current_year"`
	Status      string `json:"status"`
}

func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if students == nil {
		students = []model.Student{}
	}
	c.JSON(http.StatusOK, students)
}

func (h *Handler) GetStudent(c *gin.Context) {
	st, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) CreateStudent(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "student_id, first_name, last_name, email and password are required.")
		return
	}
	var admission *time.Time
	if req.AdmissionDate != "" {
		parsed, err := time.Parse("2006-01-02", req.AdmissionDate)
		if err != nil {
			badRequest(c, "admission_date must be YYYY-MM-DD.")
			return
		}
		admission = &parsed
	}
	st, err := h.students.Create(c.Request.Context(), student.CreateInput{
		StudentID:     req.StudentID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Password:      req.Password,
		AdmissionDate: admission,
		Department:    req.Department,
		CurrentYear:   req.CurrentYear,
		Status:        req.Status,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

func (h *Handler) UpdateStudent(c *gin.Context) {
	var req updateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "first_name, last_name and email are required.")
		return
	}
	st, err := h.students.Update(c.Request.Context(), model.Student{
		StudentID:   c.Param("id"),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Department:  req.Department,
		CurrentYear: req.CurrentYear,
		Status:      req.Status,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) DeleteStudent(c *gin.Context) {
	if err := h.students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted."})
}

// StudentDashboard returns profile plus latest-semester SGPA, attendance
// rate and enrolled-course count. The two rates are fixed-precision strings
// at this boundary.
func (h *Handler) StudentDashboard(c *gin.Context) {
	d, err := h.students.Dashboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"student":              d.Student,
		"sgpa":                 fmt.Sprintf("%.2f", d.SGPA),
		"attendanceRate":       fmt.Sprintf("%.1f", d.AttendanceRate),
		"enrolledCoursesCount": d.EnrolledCoursesCount,
	})
}
