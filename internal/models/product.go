package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ProductStatusActive   = "active"
	ProductStatusDraft    = "draft"
	ProductStatusInactive = "inactive"
)

// Product is a seller listing. Images preserve insertion order.
type Product struct {
	ID          uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID    uuid.UUID                    `gorm:"type:uuid;not null;index" json:"seller_id"`
	Name        string                       `gorm:"size:255;not null" json:"name"`
	Description string                       `gorm:"type:text" json:"description,omitempty"`
	Price       float64                      `gorm:"not null" json:"price"`
	Currency    string                       `gorm:"size:10;not null;default:'AED'" json:"currency"`
	MinOrderQty int                          `gorm:"not null;default:1" json:"min_order_qty"`
	CategoryID  *uuid.UUID                   `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Images      datatypes.JSONSlice[string]  `json:"images"`
	Status      string                       `gorm:"size:20;not null;default:'active';index" json:"status"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
