package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/cart"
)

// SetupRoutes is the single entry-point that wires up the Auth,
// Storefront, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Store) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r)

	// Public storefront: catalog, cart, checkout, site settings
	SetupStorefrontRoutes(r, db, carts)

	// Admin panel routes (token-protected)
	SetupAdminRoutes(r, db)
}
