package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleReminders serves the next-24-hours reminder list for polling
// clients.
func (s *Server) handleReminders(c *gin.Context) {
	reminders, err := s.reminders.Upcoming(c.Request.Context(), currentUserID(c), s.now())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}
