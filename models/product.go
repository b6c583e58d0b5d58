package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is catalog data. The cart/order core reads it but never writes it;
// only the admin catalog endpoints mutate products.
type Product struct {
	ID          string              `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string              `gorm:"not null" json:"name"`
	Description string              `json:"description"`
	Price       decimal.Decimal     `gorm:"type:numeric(12,2);not null" json:"price"`
	OldPrice    decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"old_price"` // promotional reference, absent when not on offer
	Image       string              `json:"image"`
	Category    string              `json:"category"`
	Stock       int                 `json:"stock"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
