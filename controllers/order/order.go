package orderControllers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/cart"
	cartControllers "github.com/contanova1845944-collab/ConfeitariaGebolos/controllers/cart"
	"github.com/contanova1845944-collab/ConfeitariaGebolos/models"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	CustomerName        string `json:"customer_name" binding:"required"`
	CustomerPhone       string `json:"customer_phone" binding:"required"`
	AddressStreet       string `json:"address_street" binding:"required"`
	AddressNeighborhood string `json:"address_neighborhood" binding:"required"`
	AddressNumber       string `json:"address_number" binding:"required"`
	AddressComplement   string `json:"address_complement"`
}

// -------- Helpers --------

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// snapshotItems copies cart lines into order rows. The copies are what
// the order keeps forever; the live cart is cleared right after.
func snapshotItems(items []cart.Item) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.OrderItem{
			ProductID:    it.ProductID,
			ProductName:  it.Name,
			ProductPrice: it.Price,
			ProductImage: it.ImageURL,
			Quantity:     it.Quantity,
		})
	}
	return out
}

// -------- Handlers --------

// CheckoutHandler turns the session cart into a pending order after the
// customer self-reports the Pix payment. The cart session rides the same
// header as the cart endpoints and is destroyed on success.
func CheckoutHandler(db *gorm.DB, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(cartControllers.TokenHeader)
		if token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart token is required"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		crt, ok := store.Get(token)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart session not found"})
			return
		}
		items := crt.Items()
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		order := models.Order{
			CustomerName:        req.CustomerName,
			CustomerPhone:       req.CustomerPhone,
			AddressStreet:       req.AddressStreet,
			AddressNeighborhood: req.AddressNeighborhood,
			AddressNumber:       req.AddressNumber,
			AddressComplement:   req.AddressComplement,
			Items:               snapshotItems(items),
			TotalAmount:         round2(crt.TotalAmount()),
			Status:              models.OrderStatusPending,
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		store.Delete(token)
		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

// GetOrdersHandler lists orders for the admin panel, newest first.
// Optional ?status= filter matching the panel tabs.
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")

		if raw := c.Query("status"); raw != "" {
			status, err := models.ParseOrderStatus(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByIDHandler returns a single order with its item snapshot.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
