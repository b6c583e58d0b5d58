package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/trevin-livele/doll-wigs/apperrors"
	"github.com/trevin-livele/doll-wigs/models"
)

type WishlistStore struct {
	db *gorm.DB
}

func NewWishlistStore(db *gorm.DB) *WishlistStore {
	return &WishlistStore{db: db}
}

// Toggle adds the product to the user's wishlist if absent, removes it if
// present. Returns whether the product ended up saved.
func (s *WishlistStore) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	if userID == "" {
		return false, apperrors.ErrAuthRequired
	}

	var existing models.WishlistItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&existing).Error
	switch {
	case err == nil:
		if err := s.db.WithContext(ctx).Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := models.WishlistItem{UserID: userID, ProductID: productID}
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

func (s *WishlistStore) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	if userID == "" {
		return nil, apperrors.ErrAuthRequired
	}
	var items []models.WishlistItem
	err := s.db.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
