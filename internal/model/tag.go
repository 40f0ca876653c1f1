package model

import "strings"

// Tag is a per-user label attached to tasks through the task_tags join
// table. Filtering matches whole tag names, never substrings.
type Tag struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index:idx_user_tag_name,unique" json:"-"`
	Name   string `gorm:"index:idx_user_tag_name,unique;size:50" json:"name"`
}

// SplitTags parses a comma-delimited tag string into trimmed, non-empty,
// de-duplicated tokens, preserving insertion order.
func SplitTags(raw string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, token := range strings.Split(raw, ",") {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
