package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"taskplanner/internal/model"
	"taskplanner/internal/repository"
)

// TaskInput represents data required to create or edit a task. Tags is a
// comma-delimited string, split into tokens on write.
type TaskInput struct {
	Title        string
	Description  string
	Priority     string
	CategoryID   *uint
	Tags         string
	DueDate      *time.Time
	ReminderDate *time.Time
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
	tagRepo      *repository.TagRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository, tagRepo *repository.TagRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo, tagRepo: tagRepo}
}

func (s *TaskService) Create(ctx context.Context, userID uint, input TaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	if err := s.checkCategory(ctx, userID, input.CategoryID); err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.Resolve(ctx, userID, model.SplitTags(input.Tags))
	if err != nil {
		return nil, err
	}

	task := model.Task{
		UserID:       userID,
		CategoryID:   input.CategoryID,
		Title:        title,
		Description:  input.Description,
		Status:       model.StatusPending,
		Priority:     priority,
		DueDate:      input.DueDate,
		ReminderDate: input.ReminderDate,
		Tags:         tags,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

// Update edits every user-settable field. Absent dates clear the stored
// ones, matching the edit form semantics.
func (s *TaskService) Update(ctx context.Context, userID, taskID uint, input TaskInput) (*model.Task, error) {
	task, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	if err := s.checkCategory(ctx, userID, input.CategoryID); err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.Resolve(ctx, userID, model.SplitTags(input.Tags))
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = input.Description
	task.Priority = priority
	task.CategoryID = input.CategoryID
	task.DueDate = input.DueDate
	task.ReminderDate = input.ReminderDate

	if err := s.taskRepo.Update(ctx, task, tags); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateStatus transitions the task status. Moving to done stamps
// CompletedAt; moving away clears it.
func (s *TaskService) UpdateStatus(ctx context.Context, userID, taskID uint, status string, now time.Time) (*model.Task, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	task, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = status
	if status == model.StatusDone {
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID uint) error {
	if err := s.taskRepo.Delete(ctx, userID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// checkCategory enforces that an assigned category belongs to the same
// user. The legacy system never validated this.
func (s *TaskService) checkCategory(ctx context.Context, userID uint, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.categoryRepo.FindByID(ctx, userID, *categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryOwnership
		}
		return fmt.Errorf("find category: %w", err)
	}
	return nil
}
