package model

import "time"

// Session is a server-side login session keyed by an opaque token.
type Session struct {
	Token     string `gorm:"primaryKey;size:36"`
	UserID    uint   `gorm:"index"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
