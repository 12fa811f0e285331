package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prajwalpc099d/ProjectVault/internal/auth"
	"github.com/prajwalpc099d/ProjectVault/internal/auth/domain"
)

// RegisterUser creates the profile document for the authenticated Firebase
// user. Called once after client-side signup.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	user := &domain.User{
		UID:        auth.UserFirebaseUID(c),
		Email:      auth.UserEmail(c),
		Role:       req.Role,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Position:   req.Position,
		EmployeeID: req.EmployeeID,
		Enrollment: req.Enrollment,
		Course:     req.Course,
		Year:       req.Year,
	}

	created, err := h.authService.Register(c.Request.Context(), user)
	if errors.Is(err, domain.ErrInvalidRole) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid role"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "user": created})
}

// Me returns the current user's profile.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.authService.GetProfile(c.Request.Context(), auth.UserFirebaseUID(c))
	if errors.Is(err, domain.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}

// UpdateMe edits the current user's profile fields.
func (h *Handler) UpdateMe(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	user := &domain.User{
		UID:        auth.UserFirebaseUID(c),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Position:   req.Position,
		Enrollment: req.Enrollment,
		Course:     req.Course,
		Year:       req.Year,
	}

	err := h.authService.UpdateProfile(c.Request.Context(), user)
	if errors.Is(err, domain.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListUsers returns all users. Admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context(), c.Query("role"))
	if errors.Is(err, domain.ErrInvalidRole) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid role filter"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "users": users})
}

// ChangeRole updates another user's role. Admin only.
func (h *Handler) ChangeRole(c *gin.Context) {
	var req changeRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	err := h.authService.ChangeRole(c.Request.Context(), c.Param("id"), req.Role)
	switch {
	case errors.Is(err, domain.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid role"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
