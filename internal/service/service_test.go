package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskplanner/internal/model"
	"taskplanner/internal/repository"
)

// fixture bundles every service against one temp sqlite database.
type fixture struct {
	db         *gorm.DB
	users      *repository.UserRepository
	categories *repository.CategoryRepository
	tasks      *repository.TaskRepository
	tags       *repository.TagRepository
	sessions   *repository.SessionRepository

	auth     *AuthService
	task     *TaskService
	category *CategoryService
	query    *QueryService
	reminder *ReminderService
	export   *ExportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)

	f := &fixture{
		db:         db,
		users:      repository.NewUserRepository(db),
		categories: repository.NewCategoryRepository(db),
		tasks:      repository.NewTaskRepository(db),
		tags:       repository.NewTagRepository(db),
		sessions:   repository.NewSessionRepository(db),
	}
	f.auth = NewAuthService(f.users, f.categories, f.sessions, time.Hour)
	f.task = NewTaskService(f.tasks, f.categories, f.tags)
	f.category = NewCategoryService(f.categories)
	f.query = NewQueryService(f.tasks)
	f.reminder = NewReminderService(f.tasks)
	f.export = NewExportService(f.tasks, f.categories)
	return f
}

func (f *fixture) registerUser(t *testing.T, username string) *model.User {
	t.Helper()
	user, err := f.auth.Register(context.Background(), username, "secret")
	require.NoError(t, err)
	return user
}
