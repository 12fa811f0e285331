package domain

import (
	"errors"
	"time"
)

// Roles recognized by the portal.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

// User represents a portal user. The Firebase UID is the document id in the
// Firestore "users" collection.
type User struct {
	UID           string     `json:"uid" firestore:"-"`
	Email         string     `json:"email" firestore:"email"`
	Role          string     `json:"role" firestore:"role"`
	FirstName     string     `json:"firstName,omitempty" firestore:"firstName,omitempty"`
	LastName      string     `json:"lastName,omitempty" firestore:"lastName,omitempty"`
	EmailVerified bool       `json:"emailVerified" firestore:"emailVerified"`
	Status        string     `json:"status" firestore:"status"`
	CreatedAt     time.Time  `json:"createdAt" firestore:"createdAt"`
	LastLogin     *time.Time `json:"lastLogin,omitempty" firestore:"lastLogin,omitempty"`

	// Role-specific fields; only the set matching the role is populated.
	Department string `json:"department,omitempty" firestore:"department,omitempty"`
	Position   string `json:"position,omitempty" firestore:"position,omitempty"`
	EmployeeID string `json:"employeeId,omitempty" firestore:"employeeId,omitempty"`
	Enrollment string `json:"enrollment,omitempty" firestore:"enrollment,omitempty"`
	Course     string `json:"course,omitempty" firestore:"course,omitempty"`
	Year       string `json:"year,omitempty" firestore:"year,omitempty"`
}

// ValidRole reports whether role is one of the recognized portal roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}
