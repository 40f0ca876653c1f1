package service

import (
	"context"
	"time"

	"taskplanner/internal/repository"
)

// ReminderWindow is how far ahead reminders are surfaced.
const ReminderWindow = 24 * time.Hour

// Reminder is the projection served to polling clients.
type Reminder struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	ReminderDate time.Time `json:"reminder_date"`
	Priority     string    `json:"priority"`
}

// ReminderService surfaces near-term reminders for polling clients. There
// is no push delivery.
type ReminderService struct {
	taskRepo *repository.TaskRepository
}

func NewReminderService(taskRepo *repository.TaskRepository) *ReminderService {
	return &ReminderService{taskRepo: taskRepo}
}

// Upcoming returns the user's non-done tasks whose reminder falls within
// the next 24 hours from now, ordered by reminder time.
func (s *ReminderService) Upcoming(ctx context.Context, userID uint, now time.Time) ([]Reminder, error) {
	tasks, err := s.taskRepo.ListWithReminderBetween(ctx, userID, now, now.Add(ReminderWindow))
	if err != nil {
		return nil, err
	}

	reminders := make([]Reminder, 0, len(tasks))
	for _, task := range tasks {
		reminders = append(reminders, Reminder{
			ID:           task.ID,
			Title:        task.Title,
			ReminderDate: *task.ReminderDate,
			Priority:     task.Priority,
		})
	}
	return reminders, nil
}
