package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type enrollmentRequest struct {
	StudentID  string `json:"student_id" binding:"required"`
	CourseID   string `json:"course_id" binding:"required"`
	SemesterID int    `json:"semester_id" binding:"required"`
}

func (h *Handler) CreateEnrollment(c *gin.Context) {
	var req enrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "student_id, course_id and semester_id are required.")
		return
	}
	e, err := h.enrollments.Create(c.Request.Context(), req.StudentID, req.CourseID, req.SemesterID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// EnrollmentData returns the course and semester lookup lists for the
// enrollment form.
func (h *Handler) EnrollmentData(c *gin.Context) {
	data, err := h.enrollments.FormData(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
