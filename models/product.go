package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is the single catalog entity. The identifier is an opaque
// server-assigned UUID string; clients must never construct one.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"not null"` // Required
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category"`    // Optional, empty = uncategorized
	Description string    `json:"description"` // Optional
	Image       string    `json:"image"`       // URL, optional
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
