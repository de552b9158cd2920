package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sis/internal/model"
)

type courseRequest struct {
	CourseID    string `json:"course_id"`
	CourseName  string `json:"course_name" binding:"required"`
	CreditHours int    `json:"credit_hours" binding:"required"`
	FacultyName string `json:"faculty_name"`
	Department  string `json:"department"`
	Schedule    string `json:"schedule"`
	Status      string `json:"status"`
}

func (h *Handler) ListCourses(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}
	c.JSON(http.StatusOK, courses)
}

func (h *Handler) GetCourse(c *gin.Context) {
	course, err := h.courses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *Handler) CreateCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "course_id, course_name and credit_hours are required.")
		return
	}
	created, err := h.courses.Create(c.Request.Context(), model.Course{
		CourseID:    req.CourseID,
		CourseName:  req.CourseName,
		CreditHours: req.CreditHours,
		FacultyName: req.FacultyName,
		Department:  req.Department,
		Schedule:    req.Schedule,
		Status:      req.Status,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "course_name and credit_hours are required.")
		return
	}
	updated, err := h.courses.Update(c.Request.Context(), model.Course{
		CourseID:    c.Param("id"),
		CourseName:  req.CourseName,
		CreditHours: req.CreditHours,
		FacultyName: req.FacultyName,
		Department:  req.Department,
		Schedule:    req.Schedule,
		Status:      req.Status,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteCourse(c *gin.Context) {
	if err := h.courses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted."})
}
