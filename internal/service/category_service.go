package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskplanner/internal/model"
	"taskplanner/internal/repository"
)

// CategoryService provides helpers around categories.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context, userID uint) ([]model.Category, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *CategoryService) Create(ctx context.Context, userID uint, name, color string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if color == "" {
		color = model.DefaultCategoryColor
	}

	category := model.Category{UserID: userID, Name: name, Color: color}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes the category; its tasks survive uncategorized.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uint) error {
	if err := s.repo.Delete(ctx, userID, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
