package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prajwalpc099d/ProjectVault/internal/auth"
	"github.com/prajwalpc099d/ProjectVault/internal/notifications/domain"
	"github.com/prajwalpc099d/ProjectVault/internal/notifications/service"
)

// Handler bundles the dependencies for notification HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) list(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	items, err := h.svc.ListForUser(c.Request.Context(), uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "notifications": items})
}

func (h *Handler) markRead(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	id := c.Param("id")

	err := h.svc.MarkRead(c.Request.Context(), uid, id)
	if errors.Is(err, domain.ErrNotificationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "notification not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) delete(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	id := c.Param("id")

	err := h.svc.Delete(c.Request.Context(), uid, id)
	if errors.Is(err, domain.ErrNotificationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "notification not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
