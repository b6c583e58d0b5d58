// Package checkout models the delivery -> payment -> confirmed sequence that
// gates order creation. The state lives in an explicit Workflow value so the
// flow is testable without any HTTP surface.
package checkout

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/trevin-livele/doll-wigs/apperrors"
	"github.com/trevin-livele/doll-wigs/models"
)

type State string

const (
	StateCollectingDelivery State = "collecting_delivery"
	StateCollectingPayment  State = "collecting_payment"
	StateConfirmed          State = "confirmed"
)

var (
	ErrInvalidState       = errors.New("action not allowed in current checkout state")
	ErrSubmissionInFlight = errors.New("a checkout submission is already in flight")
)

// DeliveryDetails is the raw delivery form.
type DeliveryDetails struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	County       string `json:"county"`
	Area         string `json:"area"`
	Instructions string `json:"instructions"`
}

func (d DeliveryDetails) missingFields() []string {
	var missing []string
	if strings.TrimSpace(d.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(d.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if strings.TrimSpace(d.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(d.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(d.City) == "" {
		missing = append(missing, "city")
	}
	return missing
}

// ShippingAddress freezes the form into the snapshot stored on the order.
func (d DeliveryDetails) ShippingAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Name:         strings.TrimSpace(d.FirstName + " " + d.LastName),
		Phone:        d.Phone,
		Address:      d.Address,
		City:         d.City,
		County:       d.County,
		Area:         d.Area,
		Instructions: d.Instructions,
	}
}

// OrderPlacer is the single write the workflow performs, on confirmation.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, userID string, addr models.ShippingAddress) (*models.Order, error)
}

// Workflow is a three-state machine. Nothing is persisted until SubmitPayment
// succeeds; abandoning the workflow at any earlier point leaves the cart and
// the store untouched.
type Workflow struct {
	userID   string
	state    State
	delivery DeliveryDetails
	orders   OrderPlacer
	inFlight atomic.Bool
}

func New(orders OrderPlacer, userID string) *Workflow {
	return &Workflow{
		userID: userID,
		state:  StateCollectingDelivery,
		orders: orders,
	}
}

func (w *Workflow) State() State { return w.state }

// SubmitDelivery validates the delivery form and advances to payment
// collection. On validation failure the state does not move.
func (w *Workflow) SubmitDelivery(d DeliveryDetails) error {
	if w.state != StateCollectingDelivery {
		return ErrInvalidState
	}
	if missing := d.missingFields(); len(missing) > 0 {
		return apperrors.NewValidation("missing delivery details", missing...)
	}
	w.delivery = d
	w.state = StateCollectingPayment
	return nil
}

// Back returns from payment collection to the delivery form.
func (w *Workflow) Back() error {
	if w.state != StateCollectingPayment {
		return ErrInvalidState
	}
	w.state = StateCollectingDelivery
	return nil
}

// SubmitPayment places the order. The state advances to Confirmed only on an
// explicit success from the order placer; on failure it stays at payment
// collection so the user can retry. A second call while one is in flight is
// rejected rather than queued, so double-clicks cannot produce double orders.
func (w *Workflow) SubmitPayment(ctx context.Context, paymentPhone string) (*models.Order, error) {
	if w.state != StateCollectingPayment {
		return nil, ErrInvalidState
	}
	if w.userID == "" {
		return nil, apperrors.ErrAuthRequired
	}
	if strings.TrimSpace(paymentPhone) == "" {
		return nil, apperrors.NewValidation("missing payment details", "payment_phone")
	}

	if !w.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer w.inFlight.Store(false)

	order, err := w.orders.PlaceOrder(ctx, w.userID, w.delivery.ShippingAddress())
	if err != nil {
		return nil, err
	}
	w.state = StateConfirmed
	return order, nil
}
