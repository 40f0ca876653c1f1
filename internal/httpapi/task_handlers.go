package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskplanner/internal/service"
)

// dateTimeLayout matches the datetime-local form format the legacy UI
// submitted.
const dateTimeLayout = "2006-01-02T15:04"

type taskRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	CategoryID   *uint  `json:"category_id"`
	Tags         string `json:"tags"`
	DueDate      string `json:"due_date"`
	ReminderDate string `json:"reminder_date"`
}

func (r taskRequest) toInput() service.TaskInput {
	return service.TaskInput{
		Title:        r.Title,
		Description:  r.Description,
		Priority:     r.Priority,
		CategoryID:   r.CategoryID,
		Tags:         r.Tags,
		DueDate:      parseDateTime(r.DueDate),
		ReminderDate: parseDateTime(r.ReminderDate),
	}
}

// parseDateTime treats empty or malformed strings as "no date provided".
func parseDateTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateTimeLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

// handleListTasks serves the filtered, sorted task list together with the
// dashboard aggregates over the full task set.
func (s *Server) handleListTasks(c *gin.Context) {
	userID := currentUserID(c)

	filter := service.Filter{
		Search:   c.Query("search"),
		Priority: c.Query("priority"),
		Status:   c.Query("status"),
		Tag:      c.Query("tag"),
		Sort:     c.Query("sort"),
	}

	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	tasks, err := s.query.ListTasks(c.Request.Context(), userID, filter)
	if err != nil {
		fail(c, err)
		return
	}

	dashboard, err := s.query.Dashboard(c.Request.Context(), userID, s.now())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "dashboard": dashboard})
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), currentUserID(c), req.toInput())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	var req taskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := s.tasks.Update(c.Request.Context(), currentUserID(c), taskID, req.toInput())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleUpdateStatus(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := s.tasks.UpdateStatus(c.Request.Context(), currentUserID(c), taskID, req.Status, s.now())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.tasks.Delete(c.Request.Context(), currentUserID(c), taskID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

// pathID parses the :id path parameter, answering 400 on garbage.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
