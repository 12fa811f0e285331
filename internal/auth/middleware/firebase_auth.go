package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/prajwalpc099d/ProjectVault/internal/auth/repository"
)

const (
	ctxFirebaseUID = "firebase_uid"
	ctxUserEmail   = "email"
	ctxUserRole    = "user_role"
)

// FirebaseAuthMiddleware validates Firebase ID tokens and extracts user info
func FirebaseAuthMiddleware(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			c.Abort()
			return
		}

		decodedToken, err := authClient.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// Store user info in context
		c.Set(ctxFirebaseUID, decodedToken.UID)

		// Extract email from claims if available
		if email, ok := decodedToken.Claims["email"].(string); ok {
			c.Set(ctxUserEmail, email)
		}

		// Store the full token for access to other claims if needed
		c.Set("firebase_token", decodedToken)

		c.Next()
	}
}

// WithRole loads the user's profile and stores their role in the context.
// Users without a profile document pass through with an empty role; routes
// that need one gate on RequireRole.
func WithRole(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetString(ctxFirebaseUID))
		if uid != "" {
			if user, err := users.GetByUID(c.Request.Context(), uid); err == nil {
				c.Set(ctxUserRole, user.Role)
			}
		}
		c.Next()
	}
}

// RequireRole rejects requests whose user role is not in the allowed set.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ctxUserRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
