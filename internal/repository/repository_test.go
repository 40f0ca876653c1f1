package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskplanner/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedTask(t *testing.T, db *gorm.DB, task *model.Task) *model.Task {
	t.Helper()
	require.NoError(t, NewTaskRepository(db).Create(context.Background(), task))
	return task
}
