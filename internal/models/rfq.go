package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RFQStatusOpen      = "open"
	RFQStatusClosed    = "closed"
	RFQStatusCancelled = "cancelled"
)

// RFQ is a buyer's request for quote. Listed only to its owning buyer.
type RFQ struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	BuyerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"buyer_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Quantity    int        `gorm:"not null" json:"quantity"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	TargetPrice *float64   `json:"target_price,omitempty"`
	Country     string     `gorm:"size:100" json:"country,omitempty"`
	Status      string     `gorm:"size:20;not null;default:'open'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (r *RFQ) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ValidRFQStatus reports whether status is a known RFQ state.
func ValidRFQStatus(status string) bool {
	return status == RFQStatusOpen || status == RFQStatusClosed || status == RFQStatusCancelled
}
