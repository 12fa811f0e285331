package domain

import (
	"errors"
	"time"
)

// Project status workflow.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidStatus   = errors.New("invalid project status")
	ErrNotOwner        = errors.New("not the project owner")
)

// Project is a catalog entry in the Firestore "projects" collection.
// Tags is always non-nil after repository normalization; documents with a
// missing or ill-typed tags field decode to an empty slice.
type Project struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	GithubLink  string         `json:"githubLink,omitempty"`
	Status      string         `json:"status"`
	OwnerID     string         `json:"ownerId"`
	OwnerEmail  string         `json:"ownerEmail,omitempty"`
	Likes       []string       `json:"likes,omitempty"`
	Bookmarks   []string       `json:"bookmarks,omitempty"`
	Uploads     map[string]any `json:"uploads,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Feedback is a review comment in the "feedback" subcollection of a project.
type Feedback struct {
	ID        string    `json:"id" firestore:"-"`
	Text      string    `json:"text" firestore:"text"`
	Author    string    `json:"author" firestore:"author"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// ValidStatus reports whether status is part of the workflow.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
