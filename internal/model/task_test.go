package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "work", []string{"work"}},
		{"trims and drops empties", " work, , urgent ,", []string{"work", "urgent"}},
		{"keeps insertion order", "home,work,urgent", []string{"home", "work", "urgent"}},
		{"dedupes", "work, urgent, work", []string{"work", "urgent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.raw))
		})
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 1, PriorityRank(PriorityUrgent))
	assert.Equal(t, 2, PriorityRank(PriorityHigh))
	assert.Equal(t, 3, PriorityRank(PriorityMedium))
	assert.Equal(t, 4, PriorityRank(PriorityLow))
	assert.Equal(t, 5, PriorityRank("someday"))
}

func TestValidStatusAndPriority(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusWorking))
	assert.True(t, ValidStatus(StatusDone))
	assert.False(t, ValidStatus("archived"))

	assert.True(t, ValidPriority(PriorityUrgent))
	assert.False(t, ValidPriority(""))
	assert.False(t, ValidPriority("critical"))
}

func TestTaskHasTag(t *testing.T) {
	task := Task{Tags: []Tag{{Name: "start"}, {Name: "work"}}}

	assert.True(t, task.HasTag("work"))
	// Whole-name matching only; "art" must not match "start".
	assert.False(t, task.HasTag("art"))
	assert.Equal(t, []string{"start", "work"}, task.TagNames())
}
