package domain

import "time"

// Interaction actions recorded in the analytics event log.
const (
	ActionView     = "view"
	ActionStar     = "star"
	ActionFork     = "fork"
	ActionLike     = "like"
	ActionUnlike   = "unlike"
	ActionBookmark = "bookmark"
)

// Interaction is a user's record for one project, stored at
// users/{uid}/interactions/{projectID}. The document id is the project id,
// so a user can have at most one record per project.
type Interaction struct {
	ProjectID  string `json:"projectId" firestore:"-"`
	Liked      bool   `json:"liked" firestore:"liked"`
	Bookmarked bool   `json:"bookmarked" firestore:"bookmarked"`
}

// Event is an append-only analytics record of a single interaction.
type Event struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	ProjectID string    `json:"projectId"`
	Action    string    `json:"action"`
	Weight    float64   `json:"weight"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActionWeight maps an action to its analytics weight.
func ActionWeight(action string) float64 {
	switch action {
	case ActionView:
		return 0.3
	case ActionStar:
		return 0.7
	case ActionFork:
		return 1.0
	default:
		return 0.5
	}
}
