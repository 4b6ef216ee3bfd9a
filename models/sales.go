package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductSales is the per-product sales rollup read by the analytics
// panel. Rows are written when an order is accepted and rebuilt by the
// nightly reconcile; readers never recompute them from order history.
type ProductSales struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID    string    `gorm:"type:uuid;uniqueIndex" json:"product_id"`
	ProductName  string    `json:"product_name"`
	QuantitySold int       `gorm:"not null;default:0" json:"quantity_sold"`
	TotalRevenue float64   `gorm:"not null;default:0" json:"total_revenue"`
	LastSaleAt   time.Time `json:"last_sale_at"`
}

func (ProductSales) TableName() string { return "product_sales" }

func (s *ProductSales) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
