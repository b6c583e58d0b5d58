package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/trevin-livele/doll-wigs/apperrors"
	"github.com/trevin-livele/doll-wigs/models"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// OrderStatusStore is the slice of order storage the lifecycle needs.
type OrderStatusStore interface {
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error
}

// LifecycleService applies fulfillment status changes. The flow is forward
// only (pending -> processing -> shipped -> delivered) with cancellation
// allowed from any non-terminal status; delivered and cancelled are final.
type LifecycleService struct {
	orders OrderStatusStore
	hub    Broadcaster
	log    *zap.Logger
}

func NewLifecycleService(orders OrderStatusStore, hub Broadcaster, log *zap.Logger) *LifecycleService {
	return &LifecycleService{orders: orders, hub: hub, log: log}
}

// SetStatus moves the order to next. Re-setting the current status is a
// no-op; the order is returned unchanged.
func (s *LifecycleService) SetStatus(ctx context.Context, orderID string, next models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == next {
		return order, nil
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, apperrors.Persistence("update order status", err)
	}
	order.Status = next
	order.UpdatedAt = time.Now()

	s.log.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("status", string(next)))

	if s.hub != nil {
		s.hub.OrderStatusChanged(*order)
	}
	return order, nil
}
