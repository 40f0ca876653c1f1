package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"taskplanner/internal/model"
	"taskplanner/internal/repository"
)

// Sort modes for ListTasks.
const (
	SortCreatedDesc = "created_desc"
	SortCreatedAsc  = "created_asc"
	SortDueDate     = "due_date"
	SortPriority    = "priority"
	SortTitle       = "title"
)

// UpcomingWindow is how far ahead the dashboard counts due tasks.
const UpcomingWindow = 7 * 24 * time.Hour

// Filter narrows ListTasks. All supplied filters are ANDed. Search is a
// case-sensitive substring match on title or description; Tag matches a
// whole tag name.
type Filter struct {
	Search     string
	CategoryID *uint
	Priority   string
	Status     string
	Tag        string
	Sort       string
}

// StatusCounts are per-status totals over the full task set.
type StatusCounts struct {
	Pending int `json:"pending"`
	Working int `json:"working"`
	Done    int `json:"done"`
}

// PriorityCounts count pending tasks only.
type PriorityCounts struct {
	Urgent int `json:"urgent"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Dashboard aggregates are computed over the user's entire task set,
// unaffected by any active filters.
type Dashboard struct {
	Status   StatusCounts   `json:"status"`
	Priority PriorityCounts `json:"priority"`
	Overdue  int            `json:"overdue"`
	Upcoming int            `json:"upcoming"`
	Tags     []string       `json:"tags"`
}

// QueryService is the task query and aggregation engine.
type QueryService struct {
	taskRepo *repository.TaskRepository
}

func NewQueryService(taskRepo *repository.TaskRepository) *QueryService {
	return &QueryService{taskRepo: taskRepo}
}

// ListTasks returns the user's tasks satisfying every supplied filter,
// ordered by the requested sort mode. Equality filters are pushed to the
// store; search and tag matching run over the materialized set, and
// sorting always happens in memory so every mode behaves the same at
// single-user scale.
func (s *QueryService) ListTasks(ctx context.Context, userID uint, f Filter) ([]model.Task, error) {
	tasks, err := s.taskRepo.List(ctx, userID, repository.TaskQuery{
		CategoryID: f.CategoryID,
		Status:     f.Status,
		Priority:   f.Priority,
	})
	if err != nil {
		return nil, err
	}

	if f.Search != "" || f.Tag != "" {
		filtered := tasks[:0]
		for _, task := range tasks {
			if f.Search != "" && !matchesSearch(task, f.Search) {
				continue
			}
			if f.Tag != "" && !task.HasTag(f.Tag) {
				continue
			}
			filtered = append(filtered, task)
		}
		tasks = filtered
	}

	sortTasks(tasks, f.Sort)
	return tasks, nil
}

// Dashboard computes the aggregate counts over the user's full task set.
// Overdue and upcoming are judged against the caller's clock.
func (s *QueryService) Dashboard(ctx context.Context, userID uint, now time.Time) (*Dashboard, error) {
	tasks, err := s.taskRepo.List(ctx, userID, repository.TaskQuery{})
	if err != nil {
		return nil, err
	}

	horizon := now.Add(UpcomingWindow)

	d := Dashboard{Tags: []string{}}
	tagSet := make(map[string]struct{})

	for _, task := range tasks {
		switch task.Status {
		case model.StatusPending:
			d.Status.Pending++
		case model.StatusWorking:
			d.Status.Working++
		case model.StatusDone:
			d.Status.Done++
		}

		if task.Status == model.StatusPending {
			switch task.Priority {
			case model.PriorityUrgent:
				d.Priority.Urgent++
			case model.PriorityHigh:
				d.Priority.High++
			case model.PriorityMedium:
				d.Priority.Medium++
			case model.PriorityLow:
				d.Priority.Low++
			}
		}

		if task.Status != model.StatusDone && task.DueDate != nil {
			due := *task.DueDate
			if due.Before(now) {
				d.Overdue++
			} else if !due.After(horizon) {
				d.Upcoming++
			}
		}

		for _, tag := range task.Tags {
			tagSet[tag.Name] = struct{}{}
		}
	}

	for name := range tagSet {
		d.Tags = append(d.Tags, name)
	}
	sort.Strings(d.Tags)

	return &d, nil
}

// matchesSearch is a case-sensitive substring match on title or
// description, matching legacy behavior.
func matchesSearch(task model.Task, search string) bool {
	return strings.Contains(task.Title, search) || strings.Contains(task.Description, search)
}

// sortTasks orders tasks by the given mode, defaulting to newest first.
// sort.SliceStable keeps ties in insertion order.
func sortTasks(tasks []model.Task, mode string) {
	switch mode {
	case SortCreatedAsc:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	case SortDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return model.PriorityRank(tasks[i].Priority) < model.PriorityRank(tasks[j].Priority)
		})
	case SortTitle:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Title < tasks[j].Title
		})
	default: // SortCreatedDesc
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}
}
