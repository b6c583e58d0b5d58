package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/trevin-livele/doll-wigs/models"
)

type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) Create(ctx context.Context, category *models.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *CategoryStore) Update(ctx context.Context, categoryID string, updates map[string]interface{}) error {
	result := s.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", categoryID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *CategoryStore) Delete(ctx context.Context, categoryID string) error {
	result := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", categoryID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
