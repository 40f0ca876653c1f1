package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskplanner/internal/model"
)

// TagRepository manages the per-user tag table.
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) GetOrCreate(ctx context.Context, userID uint, name string) (*model.Tag, error) {
	if name == "" {
		return nil, nil
	}

	var tag model.Tag
	db := r.db.WithContext(ctx)
	err := db.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
	switch {
	case err == nil:
		return &tag, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		tag = model.Tag{UserID: userID, Name: name}
		if err := db.Create(&tag).Error; err != nil {
			return nil, fmt.Errorf("create tag: %w", err)
		}
		return &tag, nil
	default:
		return nil, fmt.Errorf("find tag: %w", err)
	}
}

// Resolve maps tag names to tag records, creating missing ones.
func (r *TagRepository) Resolve(ctx context.Context, userID uint, names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		tag, err := r.GetOrCreate(ctx, userID, name)
		if err != nil {
			return nil, err
		}
		if tag != nil {
			tags = append(tags, *tag)
		}
	}
	return tags, nil
}
