package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/trevin-livele/doll-wigs/apperrors"
	"github.com/trevin-livele/doll-wigs/models"
	"github.com/trevin-livele/doll-wigs/pricing"
)

// CartReader supplies the cart joined against live product data.
type CartReader interface {
	List(ctx context.Context, userID string) ([]models.CartItem, error)
}

// OrderWriter persists a placed order. Implementations must treat the order
// row, its items and the cart clear as one unit.
type OrderWriter interface {
	Place(ctx context.Context, order *models.Order) error
}

// Broadcaster pushes order events to connected admin dashboards. May be nil.
type Broadcaster interface {
	OrderCreated(order models.Order)
	OrderStatusChanged(order models.Order)
}

// OrderService converts a cart snapshot into a durable order.
type OrderService struct {
	cart   CartReader
	orders OrderWriter
	hub    Broadcaster
	log    *zap.Logger
}

func NewOrderService(cart CartReader, orders OrderWriter, hub Broadcaster, log *zap.Logger) *OrderService {
	return &OrderService{cart: cart, orders: orders, hub: hub, log: log}
}

// PlaceOrder snapshots the user's cart into an order. Product name, image and
// price are copied from the catalog as read here; later catalog edits never
// reach the placed order. On success the cart is empty and the order is in
// status processing. On any failure nothing is persisted and the cart is left
// exactly as it was.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, addr models.ShippingAddress) (*models.Order, error) {
	if userID == "" {
		return nil, apperrors.ErrAuthRequired
	}
	if missing := addr.MissingFields(); len(missing) > 0 {
		return nil, apperrors.NewValidation("incomplete shipping address", missing...)
	}

	items, err := s.cart.List(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence("load cart", err)
	}
	if len(items) == 0 {
		return nil, apperrors.NewValidation("cart is empty")
	}

	lines := make([]pricing.Line, 0, len(items))
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.Line{
			Price:    item.Product.Price,
			OldPrice: item.Product.OldPrice,
			Quantity: item.Quantity,
		})
		orderItems = append(orderItems, models.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.Product.Name,
			ProductImage: item.Product.Image,
			Quantity:     item.Quantity,
			Price:        item.Product.Price,
		})
	}

	summary := pricing.Quote(lines)

	order := &models.Order{
		UserID:          userID,
		Status:          models.OrderStatusPending,
		Total:           summary.Total,
		ShippingAddress: addr,
		Items:           orderItems,
	}

	if err := s.orders.Place(ctx, order); err != nil {
		s.log.Error("order placement failed",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, apperrors.Persistence("place order", err)
	}

	s.log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.String("total", order.Total.String()),
		zap.Int("items", len(order.Items)))

	if s.hub != nil {
		s.hub.OrderCreated(*order)
	}
	return order, nil
}
