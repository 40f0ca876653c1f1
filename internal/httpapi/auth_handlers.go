package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := s.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	slog.Info("user registered", "user", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := s.auth.Login(c.Request.Context(), req.Username, req.Password, s.now())
	if err != nil {
		fail(c, err)
		return
	}

	// Browser-session cookie; the server-side expiry bounds its real life.
	c.SetCookie(sessionCookie, session.Token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "login successful"})
}

func (s *Server) handleLogout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		if err := s.auth.Logout(c.Request.Context(), token); err != nil {
			slog.Warn("logout", "error", err)
		}
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (s *Server) handleToggleDarkMode(c *gin.Context) {
	enabled, err := s.auth.ToggleDarkMode(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dark_mode": enabled})
}

func (s *Server) handleDeleteAccount(c *gin.Context) {
	userID := currentUserID(c)
	if err := s.auth.DeleteAccount(c.Request.Context(), userID); err != nil {
		fail(c, err)
		return
	}
	slog.Info("account deleted", "user", userID)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
