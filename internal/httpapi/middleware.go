package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "session_token"

// userIDKey is the gin context key carrying the authenticated user id.
const userIDKey = "taskplanner_user_id"

// requireSession resolves the session cookie to a user id and stores it
// in the request context. Identity is always passed explicitly from here
// down; no handler reads ambient session state.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		userID, err := s.auth.Authenticate(c.Request.Context(), token, s.now())
		if err != nil {
			slog.Debug("session rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the authenticated user id set by requireSession.
func currentUserID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}
