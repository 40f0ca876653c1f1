package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskplanner/internal/model"
)

func TestTaskRepositoryListEqualityFilters(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")
	repo := NewTaskRepository(db)
	ctx := context.Background()

	category := model.Category{UserID: user.ID, Name: "Work", Color: "#667eea"}
	require.NoError(t, db.Create(&category).Error)

	seedTask(t, db, &model.Task{UserID: user.ID, Title: "a", Status: model.StatusPending, Priority: model.PriorityHigh, CategoryID: &category.ID})
	seedTask(t, db, &model.Task{UserID: user.ID, Title: "b", Status: model.StatusDone, Priority: model.PriorityHigh})
	seedTask(t, db, &model.Task{UserID: user.ID, Title: "c", Status: model.StatusPending, Priority: model.PriorityLow})
	seedTask(t, db, &model.Task{UserID: other.ID, Title: "not mine", Status: model.StatusPending, Priority: model.PriorityHigh})

	all, err := repo.List(ctx, user.ID, TaskQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := repo.List(ctx, user.ID, TaskQuery{Status: model.StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, task := range pending {
		assert.Equal(t, model.StatusPending, task.Status)
	}

	high, err := repo.List(ctx, user.ID, TaskQuery{Priority: model.PriorityHigh})
	require.NoError(t, err)
	assert.Len(t, high, 2)

	inCategory, err := repo.List(ctx, user.ID, TaskQuery{CategoryID: &category.ID})
	require.NoError(t, err)
	require.Len(t, inCategory, 1)
	assert.Equal(t, "a", inCategory[0].Title)

	// Unknown category id filters to an empty result, not an error.
	unknown := uint(9999)
	none, err := repo.List(ctx, user.ID, TaskQuery{CategoryID: &unknown})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTaskRepositoryReminderWindow(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	repo := NewTaskRepository(db)
	ctx := context.Background()

	now := time.Now()
	soon := now.Add(2 * time.Hour)
	late := now.Add(30 * time.Hour)

	seedTask(t, db, &model.Task{UserID: user.ID, Title: "soon", Status: model.StatusPending, Priority: model.PriorityMedium, ReminderDate: &soon})
	seedTask(t, db, &model.Task{UserID: user.ID, Title: "late", Status: model.StatusPending, Priority: model.PriorityMedium, ReminderDate: &late})
	seedTask(t, db, &model.Task{UserID: user.ID, Title: "done", Status: model.StatusDone, Priority: model.PriorityMedium, ReminderDate: &soon})
	seedTask(t, db, &model.Task{UserID: user.ID, Title: "no reminder", Status: model.StatusPending, Priority: model.PriorityMedium})

	tasks, err := repo.ListWithReminderBetween(ctx, user.ID, now, now.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "soon", tasks[0].Title)
}

func TestTaskRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	repo := NewTaskRepository(db)
	ctx := context.Background()

	tag := model.Tag{UserID: user.ID, Name: "work"}
	require.NoError(t, db.Create(&tag).Error)
	task := seedTask(t, db, &model.Task{UserID: user.ID, Title: "a", Status: model.StatusPending, Priority: model.PriorityMedium, Tags: []model.Tag{tag}})

	require.NoError(t, repo.Delete(ctx, user.ID, task.ID))

	var joinRows int64
	require.NoError(t, db.Table("task_tags").Where("task_id = ?", task.ID).Count(&joinRows).Error)
	assert.Zero(t, joinRows)

	// Deleting again, or for the wrong user, reports not found.
	assert.Error(t, repo.Delete(ctx, user.ID, task.ID))
}

func TestTaskRepositoryUpdateReplacesTags(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	repo := NewTaskRepository(db)
	ctx := context.Background()

	work := model.Tag{UserID: user.ID, Name: "work"}
	home := model.Tag{UserID: user.ID, Name: "home"}
	require.NoError(t, db.Create(&work).Error)
	require.NoError(t, db.Create(&home).Error)

	task := seedTask(t, db, &model.Task{UserID: user.ID, Title: "a", Status: model.StatusPending, Priority: model.PriorityMedium, Tags: []model.Tag{work}})

	task.Title = "b"
	require.NoError(t, repo.Update(ctx, task, []model.Tag{home}))

	got, err := repo.FindByID(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Title)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "home", got.Tags[0].Name)
}
