package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	salesControllers "github.com/contanova1845944-collab/ConfeitariaGebolos/controllers/sales"
	"github.com/contanova1845944-collab/ConfeitariaGebolos/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// errNotSoftDeleted guards the permanent-delete path: only orders already
// in the deleted tab may be erased for good.
var errNotSoftDeleted = errors.New("order must be soft-deleted first")

// UpdateOrderStatusHandler applies a single admin-initiated status
// transition. Only status and updated_at ever change; the item snapshot
// and total are fixed at checkout. Moving an order into accepted folds
// it into the sales rollup within the same transaction.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var order models.Order
			if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
				return err
			}
			if !models.CanTransition(order.Status, newStatus) {
				return models.ErrIllegalTransition
			}

			updates := map[string]interface{}{
				"status":     newStatus,
				"updated_at": time.Now(),
			}
			if err := tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(updates).Error; err != nil {
				return err
			}

			// keep the rollup equal to the accepted-order aggregate:
			// entering accepted adds the order, leaving it takes it back out
			if newStatus == models.OrderStatusAccepted {
				return salesControllers.Apply(tx, &order)
			}
			if order.Status == models.OrderStatusAccepted {
				return salesControllers.Retract(tx, &order)
			}
			return nil
		})

		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, models.ErrIllegalTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Illegal status transition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		}
	}
}

// PermanentDeleteHandler erases a soft-deleted order and its snapshot
// rows. There is no way back from this one.
func PermanentDeleteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var order models.Order
			if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
				return err
			}
			if order.Status != models.OrderStatusDeleted {
				return errNotSoftDeleted
			}
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})

		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "Order deleted permanently"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, errNotSoftDeleted):
			c.JSON(http.StatusConflict, gin.H{"error": "Order must be soft-deleted first"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		}
	}
}
