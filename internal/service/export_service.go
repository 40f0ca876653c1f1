package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"taskplanner/internal/model"
	"taskplanner/internal/repository"
)

const exportDateLayout = "2006-01-02 15:04"

// TaskExport is the JSON export shape for one task. Timestamps marshal as
// RFC 3339; unset ones are null.
type TaskExport struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	Category     *string    `json:"category"`
	Tags         []string   `json:"tags"`
	DueDate      *time.Time `json:"due_date"`
	ReminderDate *time.Time `json:"reminder_date"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

// ExportService serializes a user's full task set.
type ExportService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewExportService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *ExportService {
	return &ExportService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

// WriteCSV streams the user's tasks as CSV.
func (s *ExportService) WriteCSV(ctx context.Context, userID uint, w io.Writer) error {
	tasks, catNames, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{
		"Title", "Description", "Status", "Priority", "Category", "Tags",
		"Due Date", "Created At", "Completed At",
	}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, task := range tasks {
		record := []string{
			task.Title,
			task.Description,
			task.Status,
			task.Priority,
			categoryName(task, catNames),
			strings.Join(task.TagNames(), ", "),
			formatDate(task.DueDate),
			task.CreatedAt.Format(exportDateLayout),
			formatDate(task.CompletedAt),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportJSON builds the JSON export records for the user's tasks.
func (s *ExportService) ExportJSON(ctx context.Context, userID uint) ([]TaskExport, error) {
	tasks, catNames, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	records := make([]TaskExport, 0, len(tasks))
	for _, task := range tasks {
		var category *string
		if name := categoryName(task, catNames); name != "" {
			category = &name
		}
		records = append(records, TaskExport{
			ID:           task.ID,
			Title:        task.Title,
			Description:  task.Description,
			Status:       task.Status,
			Priority:     task.Priority,
			Category:     category,
			Tags:         task.TagNames(),
			DueDate:      task.DueDate,
			ReminderDate: task.ReminderDate,
			CreatedAt:    task.CreatedAt,
			CompletedAt:  task.CompletedAt,
		})
	}
	return records, nil
}

// Filename builds a timestamped attachment name like tasks_20060102_150405.csv.
func Filename(ext string, now time.Time) string {
	return fmt.Sprintf("tasks_%s.%s", now.Format("20060102_150405"), ext)
}

func (s *ExportService) load(ctx context.Context, userID uint) ([]model.Task, map[uint]string, error) {
	tasks, err := s.taskRepo.List(ctx, userID, repository.TaskQuery{})
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	catNames := make(map[uint]string, len(categories))
	for _, cat := range categories {
		catNames[cat.ID] = cat.Name
	}
	return tasks, catNames, nil
}

func categoryName(task model.Task, catNames map[uint]string) string {
	if task.CategoryID == nil {
		return ""
	}
	return catNames[*task.CategoryID]
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(exportDateLayout)
}
