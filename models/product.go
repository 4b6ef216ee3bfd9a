package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product categories: "menu" products show up in the menu modal,
// "showcase" products on the landing page.
const (
	CategoryMenu     = "menu"
	CategoryShowcase = "showcase"
)

type Product struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    string    `gorm:"not null" json:"image_url"`
	Category    string    `gorm:"type:VARCHAR(20);not null;default:'menu'" json:"category"`
	Type        string    `json:"type"` // free-form label, e.g. "Gourmet"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
