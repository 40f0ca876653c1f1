package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskplanner/internal/model"
)

// TaskQuery narrows List to the equality filters the store can apply
// directly. Search, tag and sort are handled in memory by the caller.
type TaskQuery struct {
	CategoryID *uint
	Status     string
	Priority   string
}

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// List returns the user's tasks matching q, tags preloaded, in insertion
// order.
func (r *TaskRepository) List(ctx context.Context, userID uint, q TaskQuery) ([]model.Task, error) {
	db := r.db.WithContext(ctx).Preload("Tags").Where("user_id = ?", userID)
	if q.CategoryID != nil {
		db = db.Where("category_id = ?", *q.CategoryID)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.Priority != "" {
		db = db.Where("priority = ?", q.Priority)
	}

	var tasks []model.Task
	if err := db.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Preload("Tags").
		Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Omit("Tags").Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// Update persists the task's fields and swaps its tag set in one
// transaction, so a failed tag write never leaves a half-edited task.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task, tags []model.Tag) error {
	refs := make([]*model.Tag, len(tags))
	for i := range tags {
		refs[i] = &tags[i]
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Save(task).Error; err != nil {
			return fmt.Errorf("save task: %w", err)
		}
		if err := tx.Model(task).Association("Tags").Replace(refs); err != nil {
			return fmt.Errorf("replace tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	task.Tags = tags
	return nil
}

// Delete removes a task and its tag associations for the given user.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND id = ?", userID, taskID).Delete(&model.Task{})
		if res.Error != nil {
			return fmt.Errorf("delete task: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", taskID).Error; err != nil {
			return fmt.Errorf("delete task tags: %w", err)
		}
		return nil
	})
}

// ListWithReminderBetween returns the user's non-done tasks whose reminder
// falls within [from, to].
func (r *TaskRepository) ListWithReminderBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status <> ? AND reminder_date BETWEEN ? AND ?", userID, model.StatusDone, from, to).
		Order("reminder_date ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
