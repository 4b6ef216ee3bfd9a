package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettings is a single-row table holding the storefront branding and
// the Pix payment details shown at checkout.
type SiteSettings struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	LogoURL      string    `json:"logo_url"`
	InstagramURL string    `json:"instagram_url"`
	ContactPhone string    `json:"contact_phone"`
	PixKey       string    `json:"pix_key"`
	PixQRCodeURL string    `json:"pix_qr_code_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *SiteSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
