package salesControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/models"
)

// GetSalesReport serves the analytics tab: the rollup sorted by quantity
// sold (?order=asc|desc, default desc), catalog products that never
// sold, and revenue totals over accepted orders. The rollup is read
// as-is, never recomputed here.
func GetSalesReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		direction := "DESC"
		if c.Query("order") == "asc" {
			direction = "ASC"
		}

		var sales []models.ProductSales
		if err := db.Order("quantity_sold " + direction).Find(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}

		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		// set-difference: catalog ids minus rollup ids
		sold := make(map[string]bool, len(sales))
		for _, sale := range sales {
			sold[sale.ProductID] = true
		}
		withoutSales := make([]models.Product, 0)
		for _, product := range products {
			if !sold[product.ID] {
				withoutSales = append(withoutSales, product)
			}
		}

		var totals struct {
			Orders  int64   `json:"orders"`
			Revenue float64 `json:"revenue"`
		}
		if err := db.Model(&models.Order{}).
			Where("status = ?", models.OrderStatusAccepted).
			Select("COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS revenue").
			Scan(&totals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order totals"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product_sales":          sales,
			"products_without_sales": withoutSales,
			"total_orders":           totals.Orders,
			"total_revenue":          totals.Revenue,
		})
	}
}
