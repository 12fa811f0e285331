package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxFirebaseUID = "firebase_uid"
	CtxUserEmail   = "email"
	CtxUserRole    = "user_role"
)

// UserFirebaseUID extracts the Firebase UID from the Gin context.
// This is set by FirebaseAuthMiddleware.
func UserFirebaseUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxFirebaseUID))
}

// UserEmail extracts the authenticated user's email from the Gin context.
func UserEmail(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserEmail))
}

// UserRole extracts the user's role from the Gin context.
// Set by WithRole after the profile lookup; empty if the user has no profile yet.
func UserRole(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserRole))
}
