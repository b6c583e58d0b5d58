package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trevin-livele/doll-wigs/apperrors"
	"github.com/trevin-livele/doll-wigs/models"
)

// fakeCart is an in-memory cart joined against mutable product data, so tests
// can change a "catalog" price after an order is placed.
type fakeCart struct {
	items []models.CartItem
}

func (f *fakeCart) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

// fakeOrderStore mimics the transactional store: on failure nothing is
// recorded and the cart is untouched; on success the order is persisted,
// flipped to processing and the cart is cleared in the same step.
type fakeOrderStore struct {
	cart    *fakeCart
	placed  []*models.Order
	failErr error
}

func (f *fakeOrderStore) Place(ctx context.Context, order *models.Order) error {
	if f.failErr != nil {
		return f.failErr
	}
	order.ID = "order-1"
	order.Status = models.OrderStatusProcessing
	f.placed = append(f.placed, order)

	var remaining []models.CartItem
	for _, item := range f.cart.items {
		if item.UserID != order.UserID {
			remaining = append(remaining, item)
		}
	}
	f.cart.items = remaining
	return nil
}

type fakeHub struct {
	created []models.Order
	changed []models.Order
}

func (f *fakeHub) OrderCreated(o models.Order)       { f.created = append(f.created, o) }
func (f *fakeHub) OrderStatusChanged(o models.Order) { f.changed = append(f.changed, o) }

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func testCart() *fakeCart {
	return &fakeCart{items: []models.CartItem{
		{
			ID: "ci-1", UserID: "user-1", ProductID: "p-1", Quantity: 1,
			Product: models.Product{
				ID: "p-1", Name: "Sample Wig", Image: "wig.jpg",
				Price:    money(18500),
				OldPrice: decimal.NewNullDecimal(money(24000)),
			},
		},
		{
			ID: "ci-2", UserID: "user-1", ProductID: "p-2", Quantity: 2,
			Product: models.Product{
				ID: "p-2", Name: "Lace Front", Image: "lace.jpg",
				Price: money(24900),
			},
		},
	}}
}

func validAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Name:    "Jane Wanjiku",
		Phone:   "792164579",
		Address: "Moi Avenue, Apt 4",
		City:    "Nairobi",
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	cart := testCart()
	store := &fakeOrderStore{cart: cart}
	hub := &fakeHub{}
	svc := NewOrderService(cart, store, hub, zap.NewNop())

	order, err := svc.PlaceOrder(context.Background(), "user-1", validAddress())
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	require.Len(t, order.Items, 2)
	// 18500 + 2*24900 = 68300, over the free-shipping threshold.
	assert.Equal(t, "68300", order.Total.String())

	// Snapshots carry the product data as read at placement.
	assert.Equal(t, "Sample Wig", order.Items[0].ProductName)
	assert.Equal(t, "wig.jpg", order.Items[0].ProductImage)
	assert.Equal(t, "18500", order.Items[0].Price.String())
	assert.Equal(t, 2, order.Items[1].Quantity)

	// Cart is empty afterwards.
	remaining, _ := cart.List(context.Background(), "user-1")
	assert.Empty(t, remaining)

	require.Len(t, hub.created, 1)
	assert.Equal(t, "order-1", hub.created[0].ID)
}

func TestPlaceOrderUnderThresholdAddsShipping(t *testing.T) {
	cart := &fakeCart{items: []models.CartItem{
		{
			ID: "ci-1", UserID: "user-1", ProductID: "p-1", Quantity: 1,
			Product: models.Product{ID: "p-1", Name: "Clip-ins", Price: money(5000)},
		},
	}}
	store := &fakeOrderStore{cart: cart}
	svc := NewOrderService(cart, store, nil, zap.NewNop())

	order, err := svc.PlaceOrder(context.Background(), "user-1", validAddress())
	require.NoError(t, err)
	assert.Equal(t, "5500", order.Total.String())
}

func TestPlaceOrderRequiresSession(t *testing.T) {
	cart := testCart()
	store := &fakeOrderStore{cart: cart}
	svc := NewOrderService(cart, store, nil, zap.NewNop())

	_, err := svc.PlaceOrder(context.Background(), "", validAddress())
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
	assert.Empty(t, store.placed)
}

func TestPlaceOrderRejectsIncompleteAddress(t *testing.T) {
	cart := testCart()
	store := &fakeOrderStore{cart: cart}
	svc := NewOrderService(cart, store, nil, zap.NewNop())

	_, err := svc.PlaceOrder(context.Background(), "user-1", models.ShippingAddress{Name: "Jane"})
	ve := apperrors.AsValidation(err)
	require.NotNil(t, ve)
	assert.ElementsMatch(t, []string{"phone", "address", "city"}, ve.Fields)

	// Nothing written, cart untouched.
	assert.Empty(t, store.placed)
	remaining, _ := cart.List(context.Background(), "user-1")
	assert.Len(t, remaining, 2)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	cart := &fakeCart{}
	store := &fakeOrderStore{cart: cart}
	svc := NewOrderService(cart, store, nil, zap.NewNop())

	_, err := svc.PlaceOrder(context.Background(), "user-1", validAddress())
	require.NotNil(t, apperrors.AsValidation(err))
	assert.Empty(t, store.placed)
}

func TestPlaceOrderWriteFailureLeavesCartForRetry(t *testing.T) {
	cart := testCart()
	store := &fakeOrderStore{cart: cart, failErr: errors.New("connection reset")}
	hub := &fakeHub{}
	svc := NewOrderService(cart, store, hub, zap.NewNop())

	_, err := svc.PlaceOrder(context.Background(), "user-1", validAddress())
	require.Error(t, err)
	assert.True(t, apperrors.IsPersistence(err))

	// No half-written order, no broadcast, and the cart still holds the
	// original selection.
	assert.Empty(t, store.placed)
	assert.Empty(t, hub.created)
	remaining, _ := cart.List(context.Background(), "user-1")
	assert.Len(t, remaining, 2)

	// The same service call succeeds once the store recovers.
	store.failErr = nil
	order, err := svc.PlaceOrder(context.Background(), "user-1", validAddress())
	require.NoError(t, err)
	assert.Len(t, order.Items, 2)
}

func TestPlacedOrderPricesAreFrozen(t *testing.T) {
	cart := testCart()
	store := &fakeOrderStore{cart: cart}
	svc := NewOrderService(cart, store, nil, zap.NewNop())

	order, err := svc.PlaceOrder(context.Background(), "user-1", validAddress())
	require.NoError(t, err)

	// A later catalog price change must not reach the placed order.
	placedTotal := order.Total.String()
	placedItemPrice := order.Items[0].Price.String()

	assert.Equal(t, "68300", placedTotal)
	assert.Equal(t, "18500", placedItemPrice)
	assert.Equal(t, placedTotal, store.placed[0].Total.String())
	assert.Equal(t, placedItemPrice, store.placed[0].Items[0].Price.String())
}
