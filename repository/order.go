package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/trevin-livele/doll-wigs/models"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Place persists the order, its item snapshots, the pending->processing flip
// and the cart clear as one transaction. A failure at any point rolls the
// whole thing back: no order is ever observable without its items, and the
// cart survives intact for a retry.
func (s *OrderStore) Place(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order.Status = models.OrderStatusPending
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		// Stand-in for payment capture.
		if err := tx.Model(order).Update("status", models.OrderStatusProcessing).Error; err != nil {
			return err
		}
		order.Status = models.OrderStatusProcessing

		if err := tx.Where("user_id = ?", order.UserID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
}

func (s *OrderStore) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").
		First(&order, "id = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Profile").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus writes the new status and updated_at. Validity of the
// transition is the lifecycle service's business, not the store's.
func (s *OrderStore) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	result := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Stats is the admin dashboard roll-up.
type Stats struct {
	TotalOrders    int64           `json:"total_orders"`
	PendingOrders  int64           `json:"pending_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalProducts  int64           `json:"total_products"`
	TotalCustomers int64           `json:"total_customers"`
}

func (s *OrderStore) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return Stats{}, err
	}

	var revenue decimal.Decimal
	row := db.Model(&models.Order{}).Select("COALESCE(SUM(total), 0)").Row()
	if err := row.Scan(&revenue); err != nil {
		return Stats{}, err
	}
	stats.TotalRevenue = revenue

	if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&models.Profile{}).
		Where("role = ?", "customer").
		Count(&stats.TotalCustomers).Error; err != nil {
		return Stats{}, err
	}
	return stats, nil
}
