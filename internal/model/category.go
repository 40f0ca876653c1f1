package model

import "time"

// DefaultCategoryColor is used when no color is supplied.
const DefaultCategoryColor = "#667eea"

// Category groups tasks by area (work, personal, shopping, etc.).
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"-"`
	Name      string    `gorm:"size:50" json:"name"`
	Color     string    `gorm:"size:7" json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tasks     []Task    `gorm:"foreignKey:CategoryID" json:"-"`
}
