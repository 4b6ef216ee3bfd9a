package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/models"
)

// GetProducts lists the catalog, newest first. Optional equality filters:
// ?category=menu|showcase and ?type=Gourmet.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Order("created_at DESC")

		if category := c.Query("category"); category != "" {
			if category != models.CategoryMenu && category != models.CategoryShowcase {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			query = query.Where("category = ?", category)
		}
		if productType := c.Query("type"); productType != "" {
			query = query.Where("type = ?", productType)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
