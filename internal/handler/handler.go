// Package handler maps routes to the services and keeps the wire shapes:
// success bodies are the documented objects, every error body is {message}.
package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sis/internal/apperr"
	"sis/internal/auth"
	"sis/internal/course"
	"sis/internal/enrollment"
	"sis/internal/stats"
	"sis/internal/student"
)

type Handler struct {
	auth        *auth.Service
	students    *student.Service
	courses     *course.Service
	enrollments *enrollment.Service
	stats       *stats.Service
}

func New(a *auth.Service, st *student.Service, co *course.Service, en *enrollment.Service, ag *stats.Service) *Handler {
	return &Handler{auth: a, students: st, courses: co, enrollments: en, stats: ag}
}

// Register mounts the API routes. Admin aggregate routes sit behind the
// admin-role JWT guard.
func (h *Handler) Register(r *gin.Engine, signingKey, issuer string) {
	api := r.Group("/api")
	{
		api.POST("/login", h.Login)

		api.GET("/students", h.ListStudents)
		api.POST("/students", h.CreateStudent)
		api.GET("/students/:id", h.GetStudent)
		api.PUT("/students/:id", h.UpdateStudent)
		api.DELETE("/students/:id", h.DeleteStudent)
		api.GET("/students/:id/dashboard", h.StudentDashboard)

		api.GET("/grades/:id/current", h.CurrentGrades)
		api.GET("/attendance/:id/current", h.CurrentAttendance)

		api.GET("/courses", h.ListCourses)
		api.POST("/courses", h.CreateCourse)
		api.GET("/courses/:id", h.GetCourse)
		api.PUT("/courses/:id", h.UpdateCourse)
		api.DELETE("/courses/:id", h.DeleteCourse)

		api.POST("/enrollments", h.CreateEnrollment)
		api.GET("/enrollment-data", h.EnrollmentData)

		api.GET("/stats/average-gpa", h.AverageGPA)

		admin := api.Group("/admin", auth.RequireRole("admin", signingKey, issuer))
		{
			admin.GET("/dashboard-stats", h.DashboardStats)
			admin.GET("/courses-overview", h.CoursesOverview)
			admin.GET("/reports-data", h.ReportsData)
		}
	}
}

// fail writes the {message} error body for err. Internal detail goes to the
// server log only.
func fail(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"message": apperr.PublicMessage(err)})
}

// badRequest writes a 400 with the given message.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}
