package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskplanner/internal/model"
)

func TestCreateTaskDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.registerUser(t, "alice")

	task, err := f.task.Create(ctx, user.ID, TaskInput{Title: "  write tests  ", Tags: "work, urgent"})
	require.NoError(t, err)

	assert.Equal(t, "write tests", task.Title)
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Nil(t, task.CompletedAt)
	assert.Equal(t, []string{"work", "urgent"}, task.TagNames())
}

func TestCreateTaskValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.registerUser(t, "alice")

	_, err := f.task.Create(ctx, user.ID, TaskInput{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = f.task.Create(ctx, user.ID, TaskInput{Title: "x", Priority: "critical"})
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestCreateTaskRejectsForeignCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")

	bobCategories, err := f.categories.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	foreign := bobCategories[0].ID

	_, err = f.task.Create(ctx, alice.ID, TaskInput{Title: "x", CategoryID: &foreign})
	assert.ErrorIs(t, err, ErrCategoryOwnership)
}

func TestCompletedAtTracksDoneStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.registerUser(t, "alice")

	task, err := f.task.Create(ctx, user.ID, TaskInput{Title: "x"})
	require.NoError(t, err)

	now := time.Now()
	task, err = f.task.UpdateStatus(ctx, user.ID, task.ID, model.StatusDone, now)
	require.NoError(t, err)
	require.NotNil(t, task.CompletedAt)
	assert.WithinDuration(t, now, *task.CompletedAt, time.Second)

	task, err = f.task.UpdateStatus(ctx, user.ID, task.ID, model.StatusWorking, time.Now())
	require.NoError(t, err)
	assert.Nil(t, task.CompletedAt)

	_, err = f.task.UpdateStatus(ctx, user.ID, task.ID, "archived", time.Now())
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateTaskReplacesFieldsAndTags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.registerUser(t, "alice")

	due := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	task, err := f.task.Create(ctx, user.ID, TaskInput{Title: "x", Tags: "work", DueDate: &due})
	require.NoError(t, err)

	// Absent dates clear the stored ones.
	task, err = f.task.Update(ctx, user.ID, task.ID, TaskInput{
		Title:    "y",
		Priority: model.PriorityUrgent,
		Tags:     "home, errands",
	})
	require.NoError(t, err)

	assert.Equal(t, "y", task.Title)
	assert.Equal(t, model.PriorityUrgent, task.Priority)
	assert.Nil(t, task.DueDate)
	assert.Equal(t, []string{"home", "errands"}, task.TagNames())

	got, err := f.task.Get(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"home", "errands"}, got.TagNames())
}

func TestUpdateTaskRollsBackWhenTagWriteFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.registerUser(t, "alice")

	task, err := f.task.Create(ctx, user.ID, TaskInput{Title: "before", Tags: "work"})
	require.NoError(t, err)

	// Fail every insert into the join table; the whole edit must roll back.
	require.NoError(t, f.db.Callback().Create().Before("gorm:create").Register("fail_join_writes", func(tx *gorm.DB) {
		if tx.Statement.Table == "task_tags" {
			tx.AddError(errors.New("join table unavailable"))
		}
	}))
	t.Cleanup(func() {
		require.NoError(t, f.db.Callback().Create().Remove("fail_join_writes"))
	})

	_, err = f.task.Update(ctx, user.ID, task.ID, TaskInput{Title: "after", Tags: "home"})
	require.Error(t, err)

	got, err := f.task.Get(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "before", got.Title)
	assert.Equal(t, []string{"work"}, got.TagNames())
}

func TestCrossUserAccessIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")

	task, err := f.task.Create(ctx, alice.ID, TaskInput{Title: "private"})
	require.NoError(t, err)

	_, err = f.task.Get(ctx, bob.ID, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.task.UpdateStatus(ctx, bob.ID, task.ID, model.StatusDone, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.task.Delete(ctx, bob.ID, task.ID), ErrNotFound)

	// Alice's task is untouched.
	got, err := f.task.Get(ctx, alice.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, got.Status)
}
