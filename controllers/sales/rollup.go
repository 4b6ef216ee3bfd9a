package salesControllers

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/models"
)

// Apply folds one order into the product_sales rollup. It runs inside
// the status-update transaction so an accept and its rollup delta commit
// or fail together.
func Apply(tx *gorm.DB, order *models.Order) error {
	now := time.Now()
	for _, item := range order.Items {
		revenue := item.ProductPrice * float64(item.Quantity)

		var sale models.ProductSales
		err := tx.Where("product_id = ?", item.ProductID).First(&sale).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			sale = models.ProductSales{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				QuantitySold: item.Quantity,
				TotalRevenue: revenue,
				LastSaleAt:   now,
			}
			if err := tx.Create(&sale).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			sale.QuantitySold += item.Quantity
			sale.TotalRevenue += revenue
			sale.LastSaleAt = now
			if err := tx.Save(&sale).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// Retract removes one order's contribution from the rollup, the inverse
// of Apply for when an accepted order is soft-deleted. Rows driven to
// zero are deleted so the zero-sales diff stays honest; last_sale_at is
// left as-is for the nightly reconcile to correct.
func Retract(tx *gorm.DB, order *models.Order) error {
	for _, item := range order.Items {
		var sale models.ProductSales
		err := tx.Where("product_id = ?", item.ProductID).First(&sale).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		sale.QuantitySold -= item.Quantity
		sale.TotalRevenue -= item.ProductPrice * float64(item.Quantity)
		if sale.QuantitySold <= 0 {
			if err := tx.Delete(&sale).Error; err != nil {
				return err
			}
			continue
		}
		if err := tx.Save(&sale).Error; err != nil {
			return err
		}
	}
	return nil
}

// Reconcile rebuilds the entire rollup from accepted orders. It exists
// so a missed Apply cannot drift the table forever; last_sale_at is
// approximated by the order's updated_at (the time it was accepted).
func Reconcile(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var orders []models.Order
		if err := tx.Preload("Items").
			Where("status = ?", models.OrderStatusAccepted).
			Find(&orders).Error; err != nil {
			return err
		}

		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.ProductSales{}).Error; err != nil {
			return err
		}

		totals := make(map[string]*models.ProductSales)
		var productIDs []string
		for _, order := range orders {
			for _, item := range order.Items {
				sale, ok := totals[item.ProductID]
				if !ok {
					sale = &models.ProductSales{
						ProductID:   item.ProductID,
						ProductName: item.ProductName,
					}
					totals[item.ProductID] = sale
					productIDs = append(productIDs, item.ProductID)
				}
				sale.QuantitySold += item.Quantity
				sale.TotalRevenue += item.ProductPrice * float64(item.Quantity)
				if order.UpdatedAt.After(sale.LastSaleAt) {
					sale.LastSaleAt = order.UpdatedAt
				}
			}
		}

		for _, id := range productIDs {
			if err := tx.Create(totals[id]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReconcileAtFixedTime runs Reconcile daily at the given local time.
func ReconcileAtFixedTime(db *gorm.DB, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("Next sales rollup reconcile scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		if err := Reconcile(db); err != nil {
			log.Printf("Failed to reconcile sales rollup: %v", err)
		} else {
			log.Println("Sales rollup reconciled")
		}
	}
}
