package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	// Order statuses (Pix checkout flow)
	OrderStatusPending  OrderStatus = "pending"  // placed at checkout, awaiting the admin
	OrderStatusAccepted OrderStatus = "accepted" // confirmed by the admin
	OrderStatusDeleted  OrderStatus = "deleted"  // soft-deleted, still restorable
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// ParseOrderStatus maps a request string to a known status.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusAccepted):
		return OrderStatusAccepted, nil
	case string(OrderStatusDeleted):
		return OrderStatusDeleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

// CanTransition reports whether an admin may move an order from one
// status to another. Accepted orders can only be soft-deleted; deleted
// orders may be restored to pending or moved straight to accepted.
// Same-status updates are rejected.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case OrderStatusPending:
		return to == OrderStatusAccepted || to == OrderStatusDeleted
	case OrderStatusAccepted:
		return to == OrderStatusDeleted
	case OrderStatusDeleted:
		return to == OrderStatusPending || to == OrderStatusAccepted
	default:
		return false
	}
}

type Order struct {
	ID                  string      `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerName        string      `gorm:"not null" json:"customer_name"`
	CustomerPhone       string      `gorm:"not null" json:"customer_phone"`
	AddressStreet       string      `gorm:"not null" json:"address_street"`
	AddressNeighborhood string      `gorm:"not null" json:"address_neighborhood"`
	AddressNumber       string      `gorm:"not null" json:"address_number"`
	AddressComplement   string      `json:"address_complement"`
	Items               []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount         float64     `gorm:"not null" json:"total_amount"`
	Status              OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is a value snapshot of a cart line taken at checkout time.
// Catalog edits after checkout never reach these rows.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	OrderID      string  `gorm:"type:uuid;index" json:"-"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"name"`
	ProductPrice float64 `json:"price"`
	ProductImage string  `json:"image_url"`
	Quantity     int     `json:"quantity"`
}
