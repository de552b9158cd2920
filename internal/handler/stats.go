package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AverageGPA(c *gin.Context) {
	report, err := h.stats.AverageGPA(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) DashboardStats(c *gin.Context) {
	out, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CoursesOverview(c *gin.Context) {
	out, err := h.stats.CoursesOverview(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ReportsData(c *gin.Context) {
	out, err := h.stats.Reports(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
