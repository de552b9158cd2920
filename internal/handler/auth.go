package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login authenticates a student or admin and returns the user with a
// session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "ID, password, and role are required.")
		return
	}
	if req.UserID == "" || req.Password == "" || req.Role == "" {
		badRequest(c, "ID, password, and role are required.")
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.UserID, req.Password, req.Role)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"user":    session.User,
		"token":   session.Token,
	})
}
