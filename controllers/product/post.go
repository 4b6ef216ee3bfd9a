package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/models"
)

type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string   `json:"image_url" binding:"required"`
	Category    string   `json:"category" binding:"required,oneof=menu showcase"`
	Type        string   `json:"type"`
}

// CreateProduct adds a catalog entry from the admin panel form.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Type == "" {
			input.Type = "Gourmet"
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       *input.Price,
			ImageURL:    input.ImageURL,
			Category:    input.Category,
			Type:        input.Type,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
