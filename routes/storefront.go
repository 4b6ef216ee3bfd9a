package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/cart"
	cartControllers "github.com/contanova1845944-collab/ConfeitariaGebolos/controllers/cart"
	orderControllers "github.com/contanova1845944-collab/ConfeitariaGebolos/controllers/order"
	productcontroller "github.com/contanova1845944-collab/ConfeitariaGebolos/controllers/product"
	settingsControllers "github.com/contanova1845944-collab/ConfeitariaGebolos/controllers/settings"
)

// SetupStorefrontRoutes registers the public storefront endpoints.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Store) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	// ──────────────── Site settings (logo, contact, Pix key) ────────────────
	r.GET("/settings", settingsControllers.GetSettings(db))

	// ──────────────── Shopping cart (session-scoped) ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("/session", cartControllers.CreateSession(carts))
		cartGroup.GET("", cartControllers.GetCart(carts))
		cartGroup.POST("/items", cartControllers.AddItem(carts))
		cartGroup.PUT("/items/:product_id", cartControllers.SetItemQuantity(carts))
		cartGroup.DELETE("/items/:product_id", cartControllers.RemoveItem(carts))
		cartGroup.DELETE("", cartControllers.ClearCart(carts))
	}

	// ──────────────── Checkout ────────────────
	r.POST("/orders/checkout", orderControllers.CheckoutHandler(db, carts))

	// websocket endpoint for real-time order updates in the admin panel
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
}
