package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryStatusActive   = "active"
	CategoryStatusInactive = "inactive"
)

// Category is a catalog node. Slug is the stable lookup key and is unique.
type Category struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Slug      string     `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Icon      string     `gorm:"size:255" json:"icon,omitempty"`
	SortOrder int        `gorm:"not null;default:0" json:"sort_order"`
	Status    string     `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
