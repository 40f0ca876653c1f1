package model

import "time"

// Task statuses.
const (
	StatusPending = "pending"
	StatusWorking = "working"
	StatusDone    = "done"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task represents a single item in the planner.
type Task struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"index" json:"-"`
	CategoryID   *uint      `gorm:"index" json:"category_id"`
	Title        string     `gorm:"size:200" json:"title"`
	Description  string     `json:"description"`
	Status       string     `gorm:"size:20;default:pending" json:"status"`
	Priority     string     `gorm:"size:20;default:medium" json:"priority"`
	DueDate      *time.Time `json:"due_date"`
	ReminderDate *time.Time `json:"reminder_date"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Tags         []Tag      `gorm:"many2many:task_tags" json:"tags"`
}

// ValidStatus reports whether s is one of the three task statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusWorking || s == StatusDone
}

// ValidPriority reports whether p is one of the four task priorities.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh || p == PriorityUrgent
}

// PriorityRank orders priorities urgent(1) < high(2) < medium(3) < low(4).
// Unrecognized values rank after all four.
func PriorityRank(p string) int {
	switch p {
	case PriorityUrgent:
		return 1
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 4
	default:
		return 5
	}
}

// TagNames returns the task's tag names in stored order.
func (t *Task) TagNames() []string {
	names := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		names = append(names, tag.Name)
	}
	return names
}

// HasTag reports whether the task carries the exact tag name.
func (t *Task) HasTag(name string) bool {
	for _, tag := range t.Tags {
		if tag.Name == name {
			return true
		}
	}
	return false
}
