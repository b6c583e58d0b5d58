package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trevin-livele/doll-wigs/apperrors"
	"github.com/trevin-livele/doll-wigs/models"
)

// CartStore holds the per-user cart rows. Every mutation requires an
// authenticated user and uses single-statement writes so rapid repeated
// clicks cannot lose updates.
type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// Add upserts a (user, product) row: a new row starts at quantity 1, an
// existing one is incremented in the database rather than read back and
// overwritten.
func (s *CartStore) Add(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	if userID == "" {
		return nil, apperrors.ErrAuthRequired
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		return nil, err
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	// Reload so the caller sees the post-increment quantity.
	var saved models.CartItem
	if err := s.db.WithContext(ctx).Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateQuantity sets the quantity of one of the user's rows. A quantity at
// or below zero deletes the row; quantity-zero rows never exist.
func (s *CartStore) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	if userID == "" {
		return apperrors.ErrAuthRequired
	}
	if quantity <= 0 {
		return s.Remove(ctx, userID, itemID)
	}

	result := s.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(map[string]interface{}{"quantity": quantity, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *CartStore) Remove(ctx context.Context, userID, itemID string) error {
	if userID == "" {
		return apperrors.ErrAuthRequired
	}
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Clear removes every row for the user. Order placement clears inside its own
// transaction; this is the standalone variant for the cart endpoint.
func (s *CartStore) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.ErrAuthRequired
	}
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

// List returns the user's rows joined against current product data. The cart
// always reflects today's catalog; only a placed order freezes prices.
func (s *CartStore) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, apperrors.ErrAuthRequired
	}
	var items []models.CartItem
	err := s.db.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
