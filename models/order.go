package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, charge not yet captured
	OrderStatusProcessing OrderStatus = "processing" // charge captured, being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // terminal
	OrderStatusCancelled  OrderStatus = "cancelled"  // terminal
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a request string to a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// allowedTransitions encodes the forward-only fulfillment flow. Cancellation
// is reachable from any non-terminal status.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ShippingAddress is frozen into the order as a JSON document at placement.
type ShippingAddress struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	County       string `json:"county,omitempty"`
	Area         string `json:"area,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// MissingFields lists required fields that are empty.
func (a ShippingAddress) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(a.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(a.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(a.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(a.City) == "" {
		missing = append(missing, "city")
	}
	return missing
}

// Order is immutable after creation except for Status and UpdatedAt.
// Total is computed once at placement and never re-derived from the catalog.
type Order struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string          `gorm:"not null;index" json:"user_id"`
	Status          OrderStatus     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	ShippingAddress ShippingAddress `gorm:"serializer:json" json:"shipping_address"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Profile         *Profile        `gorm:"foreignKey:UserID;references:ID" json:"profile,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem snapshots the product name, image and price as they were at
// placement. Later catalog changes never touch these rows.
type OrderItem struct {
	ID           string          `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID      string          `gorm:"type:uuid;index;not null" json:"order_id"`
	ProductID    string          `gorm:"type:uuid;not null" json:"product_id"`
	ProductName  string          `gorm:"not null" json:"product_name"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
