package model

import "time"

// User is an account that owns tasks, categories and tags.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:80" json:"username"`
	PasswordHash string    `gorm:"size:200" json:"-"`
	DarkMode     bool      `gorm:"default:false" json:"dark_mode"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
