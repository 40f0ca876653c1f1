// Package httpapi exposes the planner over a JSON HTTP API with
// cookie-based session authentication.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskplanner/internal/service"
)

// Server wires the services into a gin router.
type Server struct {
	auth       *service.AuthService
	tasks      *service.TaskService
	categories *service.CategoryService
	query      *service.QueryService
	reminders  *service.ReminderService
	export     *service.ExportService
	now        func() time.Time
}

func New(
	auth *service.AuthService,
	tasks *service.TaskService,
	categories *service.CategoryService,
	query *service.QueryService,
	reminders *service.ReminderService,
	export *service.ExportService,
) *Server {
	return &Server{
		auth:       auth,
		tasks:      tasks,
		categories: categories,
		query:      query,
		reminders:  reminders,
		export:     export,
		now:        time.Now,
	}
}

// Router builds the route table. Everything except register and login
// sits behind the session middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/register", s.handleRegister)
	r.POST("/login", s.handleLogin)

	authed := r.Group("")
	authed.Use(s.requireSession())
	{
		authed.POST("/logout", s.handleLogout)
		authed.DELETE("/account", s.handleDeleteAccount)
		authed.POST("/settings/dark-mode", s.handleToggleDarkMode)

		authed.GET("/tasks", s.handleListTasks)
		authed.POST("/tasks", s.handleCreateTask)
		authed.PUT("/tasks/:id", s.handleUpdateTask)
		authed.POST("/tasks/:id/status", s.handleUpdateStatus)
		authed.DELETE("/tasks/:id", s.handleDeleteTask)

		authed.GET("/categories", s.handleListCategories)
		authed.POST("/categories", s.handleCreateCategory)
		authed.DELETE("/categories/:id", s.handleDeleteCategory)

		authed.GET("/export/csv", s.handleExportCSV)
		authed.GET("/export/json", s.handleExportJSON)

		authed.GET("/api/reminders", s.handleReminders)
	}

	return r
}

// httpStatus maps service sentinels to response codes.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrCredentialsRequired),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidPriority):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrCategoryOwnership):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	status := httpStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.JSON(status, gin.H{"error": msg})
}
