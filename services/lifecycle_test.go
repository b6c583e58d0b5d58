package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/trevin-livele/doll-wigs/models"
)

type fakeStatusStore struct {
	orders  map[string]*models.Order
	updates int
}

func (f *fakeStatusStore) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeStatusStore) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	order, ok := f.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	f.updates++
	return nil
}

func newLifecycleFixture(status models.OrderStatus) (*LifecycleService, *fakeStatusStore, *fakeHub) {
	store := &fakeStatusStore{orders: map[string]*models.Order{
		"order-1": {ID: "order-1", Status: status},
	}}
	hub := &fakeHub{}
	return NewLifecycleService(store, hub, zap.NewNop()), store, hub
}

func TestSetStatusForwardFlow(t *testing.T) {
	svc, store, hub := newLifecycleFixture(models.OrderStatusPending)

	order, err := svc.SetStatus(context.Background(), "order-1", models.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, models.OrderStatusProcessing, store.orders["order-1"].Status)
	require.Len(t, hub.changed, 1)

	_, err = svc.SetStatus(context.Background(), "order-1", models.OrderStatusShipped)
	require.NoError(t, err)
	_, err = svc.SetStatus(context.Background(), "order-1", models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, 3, store.updates)
}

func TestSetStatusSameStatusIsNoOp(t *testing.T) {
	svc, store, hub := newLifecycleFixture(models.OrderStatusShipped)

	order, err := svc.SetStatus(context.Background(), "order-1", models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
	assert.Zero(t, store.updates)
	assert.Empty(t, hub.changed)
}

func TestSetStatusRejectsSkippedStep(t *testing.T) {
	svc, store, _ := newLifecycleFixture(models.OrderStatusPending)

	_, err := svc.SetStatus(context.Background(), "order-1", models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.OrderStatusPending, store.orders["order-1"].Status)
}

func TestSetStatusTerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []models.OrderStatus{models.OrderStatusDelivered, models.OrderStatusCancelled} {
		svc, _, _ := newLifecycleFixture(terminal)

		_, err := svc.SetStatus(context.Background(), "order-1", models.OrderStatusProcessing)
		assert.ErrorIs(t, err, ErrInvalidTransition, "from %s", terminal)
	}
}

func TestSetStatusCancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []models.OrderStatus{models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusShipped} {
		svc, store, _ := newLifecycleFixture(from)

		_, err := svc.SetStatus(context.Background(), "order-1", models.OrderStatusCancelled)
		require.NoError(t, err, "from %s", from)
		assert.Equal(t, models.OrderStatusCancelled, store.orders["order-1"].Status)
	}
}

func TestSetStatusUnknownOrder(t *testing.T) {
	svc, _, _ := newLifecycleFixture(models.OrderStatusPending)

	_, err := svc.SetStatus(context.Background(), "missing", models.OrderStatusProcessing)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
