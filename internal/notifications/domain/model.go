package domain

import (
	"errors"
	"time"
)

// Notification types used across the portal.
const (
	TypeProjectSubmitted   = "project_submitted"
	TypeProjectApproved    = "project_approved"
	TypeProjectRejected    = "project_rejected"
	TypeFeedbackReceived   = "feedback_received"
	TypeProjectUpdated     = "project_updated"
	TypeProjectDeleted     = "project_deleted"
	TypeProjectInteraction = "project_interaction"
	TypeRoleChanged        = "role_changed"
	TypeWelcome            = "welcome"
	TypeSystemAnnouncement = "system_announcement"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is a single entry in a user's notification feed, stored in the
// root "notifications" collection keyed by recipient.
type Notification struct {
	ID          string         `json:"id" firestore:"-"`
	RecipientID string         `json:"recipientId" firestore:"recipientId"`
	Type        string         `json:"type" firestore:"type"`
	Title       string         `json:"title" firestore:"title"`
	Message     string         `json:"message" firestore:"message"`
	Data        map[string]any `json:"data,omitempty" firestore:"data,omitempty"`
	Read        bool           `json:"read" firestore:"read"`
	Icon        string         `json:"icon" firestore:"icon"`
	Color       string         `json:"color" firestore:"color"`
	CreatedAt   time.Time      `json:"createdAt" firestore:"createdAt"`
}

// UI hints carried with each notification so clients render without a lookup
// table of their own.
var icons = map[string]string{
	TypeProjectSubmitted:   "AddCircle",
	TypeProjectApproved:    "CheckCircle",
	TypeProjectRejected:    "Cancel",
	TypeFeedbackReceived:   "Comment",
	TypeProjectUpdated:     "Edit",
	TypeProjectDeleted:     "Delete",
	TypeProjectInteraction: "ThumbUp",
	TypeRoleChanged:        "AdminPanelSettings",
	TypeWelcome:            "Celebration",
	TypeSystemAnnouncement: "Announcement",
}

var colors = map[string]string{
	TypeProjectSubmitted:   "info",
	TypeProjectApproved:    "success",
	TypeProjectRejected:    "error",
	TypeFeedbackReceived:   "primary",
	TypeProjectUpdated:     "warning",
	TypeProjectDeleted:     "error",
	TypeProjectInteraction: "info",
	TypeRoleChanged:        "secondary",
	TypeWelcome:            "success",
	TypeSystemAnnouncement: "info",
}

// IconFor returns the icon name for a notification type.
func IconFor(notificationType string) string {
	if icon, ok := icons[notificationType]; ok {
		return icon
	}
	return "Info"
}

// ColorFor returns the display color for a notification type.
func ColorFor(notificationType string) string {
	if color, ok := colors[notificationType]; ok {
		return color
	}
	return "info"
}
