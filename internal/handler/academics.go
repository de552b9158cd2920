package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sis/internal/metrics"
	"sis/internal/student"
)

type courseAttendanceResponse struct {
	CourseID        string  `json:"course_id"`
	CourseName      string  `json:"course_name"`
	ClassesAttended int     `json:"classes_attended"`
	TotalClasses    int     `json:"total_classes"`
	Rate            float64 `json:"rate"`
}

// CurrentGrades returns the latest-semester grade summary and per-course
// details for a student.
func (h *Handler) CurrentGrades(c *gin.Context) {
	g, err := h.students.CurrentGrades(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if g.Details == nil {
		g.Details = []student.GradeDetail{}
	}
	c.JSON(http.StatusOK, gin.H{
		"summary": gin.H{
			"currentSgpa":   metrics.Round(g.Summary.SGPA, 2),
			"totalCredits":  g.Summary.TotalCredits,
			"coursesPassed": g.Summary.CoursesPassed,
			"totalCourses":  g.Summary.TotalCourses,
			"averageScore":  metrics.Round(g.Summary.AverageScore, 2),
		},
		"details": g.Details,
	})
}

// CurrentAttendance returns the latest-semester attendance summary,
// per-course breakdown and recent feed for a student.
func (h *Handler) CurrentAttendance(c *gin.Context) {
	a, err := h.students.CurrentAttendance(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	details := make([]courseAttendanceResponse, 0, len(a.Details))
	for _, ca := range a.Details {
		details = append(details, courseAttendanceResponse{
			CourseID:        ca.CourseID,
			CourseName:      ca.CourseName,
			ClassesAttended: ca.Attended,
			TotalClasses:    ca.Total,
			Rate:            metrics.Round(ca.Rate, 1),
		})
	}
	if a.Recent == nil {
		a.Recent = []student.RecentEntry{}
	}
	c.JSON(http.StatusOK, gin.H{
		"summary": gin.H{
			"overallRate":     metrics.Round(a.Summary.Rate, 1),
			"totalClasses":    a.Summary.Total,
			"classesAttended": a.Summary.Attended,
			"totalAbsences":   a.Summary.Absences,
		},
		"details": details,
		"recent":  a.Recent,
	})
}
