package http

import "github.com/prajwalpc099d/ProjectVault/internal/projects/service"

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

type submitReq struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	GithubLink  string         `json:"githubLink"`
	Uploads     map[string]any `json:"uploads"`
}

type statusReq struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

type feedbackReq struct {
	Text string `json:"text"`
}
