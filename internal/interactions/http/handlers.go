package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prajwalpc099d/ProjectVault/internal/auth"
	"github.com/prajwalpc099d/ProjectVault/internal/interactions/service"
	projdomain "github.com/prajwalpc099d/ProjectVault/internal/projects/domain"
)

// Handler bundles the dependencies for interaction HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

type interactReq struct {
	// One of: liked, bookmarked, view, star, fork.
	Type string `json:"type"`
}

func (h *Handler) interact(c *gin.Context) {
	var req interactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	uid := auth.UserFirebaseUID(c)
	projectID := c.Param("id")

	switch req.Type {
	case "liked":
		liked, err := h.svc.ToggleLike(c.Request.Context(), uid, auth.UserEmail(c), projectID)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "liked": liked})

	case "bookmarked":
		bookmarked, err := h.svc.ToggleBookmark(c.Request.Context(), uid, projectID)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "bookmarked": bookmarked})

	case "view":
		h.svc.RecordView(c.Request.Context(), uid, projectID)
		c.JSON(http.StatusOK, gin.H{"ok": true})

	case "star":
		h.svc.RecordStar(c.Request.Context(), uid, projectID)
		c.JSON(http.StatusOK, gin.H{"ok": true})

	case "fork":
		h.svc.RecordFork(c.Request.Context(), uid, projectID)
		c.JSON(http.StatusOK, gin.H{"ok": true})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown interaction type"})
	}
}

func (h *Handler) engagement(c *gin.Context) {
	totals, err := h.svc.ProjectEngagement(c.Request.Context(), limitQuery(c, 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "engagement": totals})
}

func (h *Handler) userActivity(c *gin.Context) {
	events, err := h.svc.UserActivity(c.Request.Context(), c.Param("id"), limitQuery(c, 50))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "events": events})
}

func limitQuery(c *gin.Context, fallback int) int {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func (h *Handler) mine(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "interaction": record})
}

func writeErr(c *gin.Context, err error) {
	if errors.Is(err, projdomain.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}
