package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prajwalpc099d/ProjectVault/internal/auth"
	"github.com/prajwalpc099d/ProjectVault/internal/projects/domain"
	"github.com/prajwalpc099d/ProjectVault/internal/projects/service"
)

func (h *Handler) submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Submit(c.Request.Context(), auth.UserFirebaseUID(c), auth.UserEmail(c), service.SubmitInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		GithubLink:  req.GithubLink,
		Uploads:     req.Uploads,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	ownerID := c.Query("owner")
	if c.Query("mine") == "true" {
		ownerID = auth.UserFirebaseUID(c)
	}

	items, err := h.svc.List(c.Request.Context(), c.Query("status"), ownerID)
	if errors.Is(err, domain.ErrInvalidStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid status filter"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), auth.UserFirebaseUID(c), auth.UserRole(c), c.Param("id"), service.SubmitInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		GithubLink:  req.GithubLink,
		Uploads:     req.Uploads,
	})
	if err != nil {
		writeProjectErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), auth.UserFirebaseUID(c), auth.UserRole(c), c.Param("id"))
	if err != nil {
		writeProjectErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) changeStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	err := h.svc.ChangeStatus(c.Request.Context(), auth.UserFirebaseUID(c), auth.UserEmail(c), c.Param("id"), req.Status, req.Feedback)
	if errors.Is(err, domain.ErrInvalidStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid status"})
		return
	}
	if err != nil {
		writeProjectErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) addFeedback(c *gin.Context) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "feedback cannot be empty"})
		return
	}

	fb, err := h.svc.AddFeedback(c.Request.Context(),
		auth.UserFirebaseUID(c), auth.UserEmail(c), auth.UserRole(c),
		c.Param("id"), req.Text)
	if err != nil {
		writeProjectErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "feedback": fb})
}

func (h *Handler) listFeedback(c *gin.Context) {
	items, err := h.svc.ListFeedback(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "feedback": items})
}

func writeProjectErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "not allowed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
